package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
)

// GetDashboardOverview returns counts and revenue for the admin dashboard
func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalOrders         int64     `json:"total_orders"`
		PendingCount        int64     `json:"pending_count"`
		ConfirmedCount      int64     `json:"confirmed_count"`
		PreparingCount      int64     `json:"preparing_count"`
		OutForDeliveryCount int64     `json:"out_for_delivery_count"`
		DeliveredCount      int64     `json:"delivered_count"`
		CancelledCount      int64     `json:"cancelled_count"`
		TotalProducts       int64     `json:"total_products"`
		TotalKitchens       int64     `json:"total_kitchens"`
		TotalUsers          int64     `json:"total_users"`
		TotalRevenue        float64   `json:"total_revenue"`
		LastUpdated         time.Time `json:"last_updated"`
	}

	orderQuery := db.DB.Model(&models.Order{})
	orderQuery.Count(&statistics.TotalOrders)

	statusCounts := map[models.OrderStatus]*int64{
		models.StatusPending:        &statistics.PendingCount,
		models.StatusConfirmed:      &statistics.ConfirmedCount,
		models.StatusPreparing:      &statistics.PreparingCount,
		models.StatusOutForDelivery: &statistics.OutForDeliveryCount,
		models.StatusDelivered:      &statistics.DeliveredCount,
		models.StatusCancelled:      &statistics.CancelledCount,
	}
	for status, target := range statusCounts {
		db.DB.Model(&models.Order{}).Where("order_status = ?", status).Count(target)
	}

	db.DB.Model(&models.Product{}).Count(&statistics.TotalProducts)
	db.DB.Model(&models.Kitchen{}).Count(&statistics.TotalKitchens)
	db.DB.Model(&models.User{}).Count(&statistics.TotalUsers)

	// Revenue counts delivered orders only
	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenueResult RevenueResult
	db.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) as total_revenue").
		Where("order_status = ?", models.StatusDelivered).
		Scan(&revenueResult)

	statistics.TotalRevenue = revenueResult.TotalRevenue
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}
