package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the scheduler for housekeeping jobs
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()

	// Sweep expired OTP rows every minute
	_, err := c.AddFunc("* * * * *", purgeExpiredOTPs)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	// Close delivery slots whose window has passed, every 15 minutes
	_, err = c.AddFunc("*/15 * * * *", closePastDeliverySlots)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started for storefront housekeeping")
}

// purgeExpiredOTPs hard-deletes verification rows past their expiry
func purgeExpiredOTPs() {
	result := db.DB.Unscoped().
		Where("expires_at <= ?", time.Now()).
		Delete(&models.OtpVerification{})
	if result.Error != nil {
		log.Printf("Error purging expired OTPs: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired OTP rows", result.RowsAffected)
	}
}

// closePastDeliverySlots deactivates slots whose end time has passed so
// they drop out of the public listing
func closePastDeliverySlots() {
	result := db.DB.Model(&models.DeliverySlot{}).
		Where("is_active = ? AND end_time <= ?", true, time.Now()).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("Error closing past delivery slots: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Closed %d past delivery slots", result.RowsAffected)
	}
}
