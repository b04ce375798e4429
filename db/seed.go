package db

import (
	"log"
	"os"

	"github.com/khanakart/khanakart-api/models"
)

// Seed creates the admin user and starter categories if they are missing.
// Safe to run on every boot.
func Seed() {
	adminPhone := os.Getenv("ADMIN_PHONE")
	if adminPhone != "" {
		var admin models.User
		if DB.Where("phone = ?", adminPhone).First(&admin).RowsAffected == 0 {
			admin = models.User{
				Phone:   adminPhone,
				Name:    "Admin",
				IsAdmin: true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("Failed to seed admin user: %v", err)
			} else {
				log.Printf("Seeded admin user for phone %s", adminPhone)
			}
		}
	}

	categories := []models.Category{
		{Name: "Breakfast", Slug: "breakfast", Description: "Morning meals and tiffins"},
		{Name: "Lunch", Slug: "lunch", Description: "Full meals and thalis"},
		{Name: "Dinner", Slug: "dinner", Description: "Evening meals"},
		{Name: "Snacks", Slug: "snacks", Description: "Chaat, pakoras and quick bites"},
		{Name: "Beverages", Slug: "beverages", Description: "Chai, lassi and juices"},
	}

	for _, category := range categories {
		var existing models.Category
		if DB.Where("slug = ?", category.Slug).First(&existing).RowsAffected == 0 {
			DB.Create(&category)
		}
	}
}
