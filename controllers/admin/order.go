package admin

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
	"github.com/khanakart/khanakart-api/utils"
	"gorm.io/gorm"
)

// ListOrders returns all orders with pagination and an optional status
// filter
func ListOrders(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("order_status = ?", status)
	}
	if kitchenID := c.Query("kitchenId"); kitchenID != "" {
		query = query.Where("kitchen_id = ?", kitchenID)
	}

	var count int64
	query.Count(&count)

	var orders []models.Order
	if err := query.Preload("User").Preload("Kitchen").Preload("Items.Product").Preload("DeliverySlot").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"orders": orders,
		"total":  count,
		"page":   page,
		"limit":  limit,
		"pages":  (int(count) + limit - 1) / limit,
	})
}

// UpdateOrderStatus moves an order through the status machine
func UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		Status models.OrderStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return order.UpdateStatus(tx, input.Status)
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update order status",
			Error:   err.Error(),
		})
	}

	return c.JSON(order)
}
