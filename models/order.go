package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

type OrderMode string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

const (
	ModeDelivery OrderMode = "delivery"
	ModeTakeaway OrderMode = "takeaway"
	ModeDineIn   OrderMode = "dine_in"
)

var (
	ErrSlotFull          = errors.New("delivery slot is fully booked")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type Order struct {
	gorm.Model
	OrderNumber     string       `json:"order_number" gorm:"unique;not null"`
	UserID          uint         `json:"user_id"`
	User            User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	KitchenID       uint         `json:"kitchen_id"`
	Kitchen         Kitchen      `json:"kitchen,omitempty" gorm:"foreignKey:KitchenID"`
	OrderMode       OrderMode    `json:"order_mode" gorm:"not null"`
	OrderStatus     OrderStatus  `json:"order_status"`
	DeliverySlotID  *uint        `json:"delivery_slot_id"`
	DeliverySlot    DeliverySlot `json:"delivery_slot,omitempty" gorm:"foreignKey:DeliverySlotID"`
	DeliveryAddress string       `json:"delivery_address"`
	Subtotal        float64      `json:"subtotal" gorm:"type:decimal(10,2)"`
	DeliveryFee     float64      `json:"delivery_fee" gorm:"type:decimal(10,2)"`
	ServiceFee      float64      `json:"service_fee" gorm:"type:decimal(10,2)"`
	Total           float64      `json:"total" gorm:"type:decimal(10,2)"`
	Items           []OrderItem  `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"type:decimal(10,2)"` // unit price snapshot at order time
	Notes     string  `json:"notes"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderStatus == "" {
		o.OrderStatus = StatusPending
	}
	return nil
}

// ValidMode reports whether m is one of the accepted order modes.
func ValidMode(m OrderMode) bool {
	switch m {
	case ModeDelivery, ModeTakeaway, ModeDineIn:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
// The vocabulary is fixed: pending → confirmed → preparing →
// out_for_delivery → delivered, with cancellation allowed only before the
// kitchen starts preparing.
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusPreparing || to == StatusCancelled
	case StatusPreparing:
		return to == StatusOutForDelivery || to == StatusDelivered
	case StatusOutForDelivery:
		return to == StatusDelivered
	}
	return false
}

// UpdateStatus applies a status transition and persists it. A delivery
// order cancelled after booking a slot releases its seat in the same
// transaction.
func (o *Order) UpdateStatus(tx *gorm.DB, newStatus OrderStatus) error {
	if !CanTransition(o.OrderStatus, newStatus) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.OrderStatus, newStatus)
	}

	o.OrderStatus = newStatus
	if err := tx.Model(o).Update("order_status", newStatus).Error; err != nil {
		return err
	}

	if newStatus == StatusCancelled && o.NeedsSlotRelease() {
		slot := DeliverySlot{Model: gorm.Model{ID: *o.DeliverySlotID}}
		if err := slot.Release(tx); err != nil {
			return err
		}
	}

	return nil
}

// IsCancellable reports whether the customer can still cancel the order.
func (o *Order) IsCancellable() bool {
	return CanTransition(o.OrderStatus, StatusCancelled)
}

// NeedsSlotRelease reports whether cancelling the order should give a
// delivery-slot seat back. Only delivery orders ever hold one; a slot ID on
// any other mode was never booked and must not be released.
func (o *Order) NeedsSlotRelease() bool {
	return o.OrderMode == ModeDelivery && o.DeliverySlotID != nil
}

// PlacedAtIST formats the creation time for receipts.
func (o *Order) PlacedAtIST(loc *time.Location) string {
	return o.CreatedAt.In(loc).Format("02 Jan 2006, 3:04 PM")
}
