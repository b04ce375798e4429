package models

import (
	"strings"

	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"unique;not null"`
	Description string    `json:"description"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

// BeforeCreate derives the slug from the name when one isn't supplied
func (cat *Category) BeforeCreate(tx *gorm.DB) error {
	if cat.Slug == "" {
		cat.Slug = Slugify(cat.Name)
	}
	return nil
}

// Slugify lowercases a name and joins words with hyphens
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}
