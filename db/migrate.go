package db

import (
	"fmt"
	"log"

	"github.com/khanakart/khanakart-api/models"
)

func Migrate() {
	if DB == nil {
		Init()
	}

	err := DB.AutoMigrate(
		&models.User{},
		&models.Kitchen{},
		&models.Category{},
		&models.Product{},
		&models.DeliverySlot{},
		&models.Order{},
		&models.OrderItem{},
		&models.OtpVerification{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
