package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
	"github.com/khanakart/khanakart-api/redis"
	"github.com/khanakart/khanakart-api/utils"
)

// CreateKitchen creates a fulfillment location
func CreateKitchen(c *fiber.Ctx) error {
	var kitchen models.Kitchen
	if err := c.BodyParser(&kitchen); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if kitchen.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Kitchen needs a name",
		})
	}

	if err := db.DB.Create(&kitchen).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create kitchen",
			Error:   err.Error(),
		})
	}

	redis.InvalidateCatalog()
	return c.Status(fiber.StatusCreated).JSON(kitchen)
}

// UpdateKitchen updates a kitchen by ID
func UpdateKitchen(c *fiber.Ctx) error {
	id := c.Params("id")
	var kitchen models.Kitchen
	if err := db.DB.First(&kitchen, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Kitchen not found",
			Error:   err.Error(),
		})
	}

	var input models.Kitchen
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&kitchen).Updates(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update kitchen",
			Error:   err.Error(),
		})
	}

	redis.InvalidateCatalog()
	return c.JSON(kitchen)
}

// SetKitchenActive flips the active flag
func SetKitchenActive(c *fiber.Ctx) error {
	id := c.Params("id")

	type ActiveInput struct {
		IsActive bool `json:"is_active"`
	}
	input := new(ActiveInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	result := db.DB.Model(&models.Kitchen{}).Where("id = ?", id).
		Update("is_active", input.IsActive)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update kitchen",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Kitchen not found",
		})
	}

	redis.InvalidateCatalog()
	return c.JSON(fiber.Map{"is_active": input.IsActive})
}

// DeleteKitchen deletes a kitchen by ID
func DeleteKitchen(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.Kitchen{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete kitchen",
			Error:   err.Error(),
		})
	}
	redis.InvalidateCatalog()
	return c.SendStatus(fiber.StatusNoContent)
}
