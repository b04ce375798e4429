package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
	"github.com/khanakart/khanakart-api/utils"
)

// CreateDeliverySlot creates a bookable window for a kitchen
func CreateDeliverySlot(c *fiber.Ctx) error {
	var slot models.DeliverySlot
	if err := c.BodyParser(&slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if !slot.EndTime.After(slot.StartTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slot end time must be after start time",
		})
	}
	if slot.Capacity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slot capacity must be at least 1",
		})
	}

	var kitchen models.Kitchen
	if err := db.DB.First(&kitchen, slot.KitchenID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Kitchen not found",
		})
	}

	slot.BookedCount = 0
	if err := db.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create delivery slot",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// UpdateDeliverySlot updates times or capacity. Capacity can't drop below
// the bookings already taken.
func UpdateDeliverySlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.DeliverySlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Delivery slot not found",
			Error:   err.Error(),
		})
	}

	var input models.DeliverySlot
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Capacity != 0 && input.Capacity < slot.BookedCount {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Capacity cannot be lower than current bookings",
		})
	}

	// Booked count is owned by order creation, never by this endpoint
	input.BookedCount = slot.BookedCount

	if err := db.DB.Model(&slot).Updates(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update delivery slot",
			Error:   err.Error(),
		})
	}
	return c.JSON(slot)
}

// DeleteDeliverySlot removes a slot that has no bookings
func DeleteDeliverySlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.DeliverySlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Delivery slot not found",
			Error:   err.Error(),
		})
	}

	if slot.BookedCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Slot has active bookings",
		})
	}

	if err := db.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete delivery slot",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
