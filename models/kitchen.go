package models

import (
	"gorm.io/gorm"
)

type Kitchen struct {
	gorm.Model
	Name      string  `json:"name" gorm:"not null"`
	Area      string  `json:"area"`
	City      string  `json:"city"`
	OpenTime  string  `json:"open_time"`  // Format "HH:MM" in 24h
	CloseTime string  `json:"close_time"` // Format "HH:MM" in 24h
	IsActive  bool    `json:"is_active" gorm:"default:true"`
	Latitude  float64 `json:"latitude" gorm:"type:decimal(9,6)"`
	Longitude float64 `json:"longitude" gorm:"type:decimal(9,6)"`

	Products      []Product      `json:"products,omitempty" gorm:"foreignKey:KitchenID"`
	DeliverySlots []DeliverySlot `json:"delivery_slots,omitempty" gorm:"foreignKey:KitchenID"`
}
