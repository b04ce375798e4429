package models

import (
	"time"

	"gorm.io/gorm"
)

type DeliverySlot struct {
	gorm.Model
	StartTime   time.Time `json:"start_time" gorm:"not null"`
	EndTime     time.Time `json:"end_time" gorm:"not null"`
	Capacity    int       `json:"capacity" gorm:"not null"`
	BookedCount int       `json:"booked_count" gorm:"default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	KitchenID   uint      `json:"kitchen_id"`
	Kitchen     Kitchen   `json:"kitchen,omitempty" gorm:"foreignKey:KitchenID"`
}

// HasCapacity reports whether the slot can still take a booking
func (s *DeliverySlot) HasCapacity() bool {
	return s.BookedCount < s.Capacity
}

// Book increments the booked count inside tx, but only while the slot is
// below capacity. The guard runs in SQL so two concurrent bookings of the
// last seat cannot both succeed.
func (s *DeliverySlot) Book(tx *gorm.DB) error {
	result := tx.Model(&DeliverySlot{}).
		Where("id = ? AND booked_count < capacity", s.ID).
		UpdateColumn("booked_count", gorm.Expr("booked_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotFull
	}
	s.BookedCount++
	return nil
}

// Release gives a booking back after a cancellation, never going below zero.
func (s *DeliverySlot) Release(tx *gorm.DB) error {
	result := tx.Model(&DeliverySlot{}).
		Where("id = ? AND booked_count > 0", s.ID).
		UpdateColumn("booked_count", gorm.Expr("booked_count - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 && s.BookedCount > 0 {
		s.BookedCount--
	}
	return nil
}
