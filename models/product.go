package models

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name         string   `json:"name" gorm:"not null"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL     string   `json:"image_url"`
	InStock      bool     `json:"in_stock" gorm:"default:true"`
	IsVeg        bool     `json:"is_veg" gorm:"default:true"`
	CategoryID   uint     `json:"category_id"`
	Category     Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CategorySlug string   `json:"category_slug"`
	KitchenID    uint     `json:"kitchen_id"`
	Kitchen      Kitchen  `json:"kitchen,omitempty" gorm:"foreignKey:KitchenID"`
}

// AfterFind keeps the denormalized slug in sync when the category is loaded
func (p *Product) AfterFind(tx *gorm.DB) (err error) {
	if p.CategorySlug == "" && p.Category.Slug != "" {
		p.CategorySlug = p.Category.Slug
	}
	return
}
