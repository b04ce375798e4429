package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
	"github.com/khanakart/khanakart-api/redis"
	"github.com/khanakart/khanakart-api/utils"
)

// CreateCategory creates a product category
func CreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if category.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category needs a name",
		})
	}

	var existing models.Category
	slug := category.Slug
	if slug == "" {
		slug = models.Slugify(category.Name)
	}
	if db.DB.Where("slug = ?", slug).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category with this slug already exists",
		})
	}

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create category",
			Error:   err.Error(),
		})
	}

	redis.InvalidateCatalog()
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory updates a category by ID
func UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}

	var input models.Category
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&category).Updates(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update category",
			Error:   err.Error(),
		})
	}

	redis.InvalidateCatalog()
	return c.JSON(category)
}

// DeleteCategory deletes a category by ID
func DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var count int64
	db.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category still has products",
		})
	}

	if err := db.DB.Delete(&models.Category{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete category",
			Error:   err.Error(),
		})
	}

	redis.InvalidateCatalog()
	return c.SendStatus(fiber.StatusNoContent)
}
