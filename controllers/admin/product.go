package admin

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
	"github.com/khanakart/khanakart-api/utils"
)

// CreateProduct godoc
// @Summary Create a product
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} models.Product
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/admin/products [post]
func CreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if product.Name == "" || product.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product needs a name and a positive price",
		})
	}

	var category models.Category
	if err := db.DB.First(&category, product.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	product.CategorySlug = category.Slug

	if err := db.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create product",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct updates a product by ID
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}

	var input models.Product
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
		var category models.Category
		if err := db.DB.First(&category, input.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		input.CategorySlug = category.Slug
	}

	if err := db.DB.Model(&product).Updates(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update product",
			Error:   err.Error(),
		})
	}
	return c.JSON(product)
}

// SetProductStock flips the in-stock flag, which Updates() would skip for
// false values
func SetProductStock(c *fiber.Ctx) error {
	id := c.Params("id")

	type StockInput struct {
		InStock bool `json:"in_stock"`
	}
	input := new(StockInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	result := db.DB.Model(&models.Product{}).Where("id = ?", id).
		Update("in_stock", input.InStock)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update stock",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(fiber.Map{"in_stock": input.InStock})
}

// DeleteProduct deletes a product by ID
func DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.Product{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete product",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadProductImage accepts a multipart image, pushes it to Cloudinary and
// stores the returned URL on the product
func UploadProductImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "image file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadProductImage(file, fmt.Sprintf("product-%d", product.ID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&product).Update("image_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"image_url": url})
}
