package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
	"github.com/khanakart/khanakart-api/redis"
	"github.com/khanakart/khanakart-api/utils"
	"gorm.io/gorm"
)

// GetAllKitchens godoc
// @Summary Get all active kitchens
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Kitchen
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/kitchens [get]
func GetAllKitchens(c *fiber.Ctx) error {
	if cached, ok := redis.CacheGet(redis.KeyKitchens); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	var kitchens []models.Kitchen
	if err := db.DB.Where("is_active = ?", true).Find(&kitchens).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch kitchens",
			Error:   err.Error(),
		})
	}

	if payload, err := json.Marshal(kitchens); err == nil {
		redis.CacheSet(redis.KeyKitchens, string(payload))
	}

	return c.JSON(kitchens)
}

// GetKitchen godoc
// @Summary Get a kitchen by ID
// @Tags catalog
// @Produce json
// @Param id path int true "Kitchen ID"
// @Success 200 {object} models.Kitchen
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/kitchens/{id} [get]
func GetKitchen(c *fiber.Ctx) error {
	id := c.Params("id")
	var kitchen models.Kitchen
	if err := db.DB.First(&kitchen, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Kitchen not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(kitchen)
}

// GetNearestKitchen resolves the closest active kitchen for a coordinate
// pair, rejecting locations outside the service radius.
func GetNearestKitchen(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "lat and lng query parameters are required",
		})
	}

	var kitchens []models.Kitchen
	if err := db.DB.Where("is_active = ?", true).Find(&kitchens).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch kitchens",
			Error:   err.Error(),
		})
	}

	nearest, distance := utils.NearestKitchen(kitchens, lat, lng, utils.DefaultServiceRadiusKm)
	if nearest == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No kitchen delivers to this location",
		})
	}

	return c.JSON(fiber.Map{
		"kitchen":     nearest,
		"distance_km": distance,
	})
}

// GetAllCategories godoc
// @Summary Get all categories
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/categories [get]
func GetAllCategories(c *fiber.Ctx) error {
	if cached, ok := redis.CacheGet(redis.KeyCategories); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}

	if payload, err := json.Marshal(categories); err == nil {
		redis.CacheSet(redis.KeyCategories, string(payload))
	}

	return c.JSON(categories)
}

// GetAllProducts lists products with optional kitchen/category filters and
// pagination.
func GetAllProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	filter := func(q *gorm.DB) *gorm.DB {
		if kitchenID := c.Query("kitchenId"); kitchenID != "" {
			q = q.Where("kitchen_id = ?", kitchenID)
		}
		if slug := c.Query("categorySlug"); slug != "" {
			q = q.Joins("JOIN categories ON products.category_id = categories.id").
				Where("categories.slug = ?", slug)
		}
		return q
	}

	var count int64
	filter(db.DB.Model(&models.Product{})).Count(&count)

	var products []models.Product
	if err := filter(db.DB.Preload("Category")).
		Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"products": products,
		"total":    count,
		"page":     page,
		"limit":    limit,
		"pages":    (int(count) + limit - 1) / limit,
	})
}

// GetProduct godoc
// @Summary Get a product by ID
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/products/{id} [get]
func GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.Preload("Category").Preload("Kitchen").First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(product)
}

// GetDeliverySlots lists upcoming open slots, optionally for one kitchen.
func GetDeliverySlots(c *fiber.Ctx) error {
	query := db.DB.Where("is_active = ? AND end_time > ?", true, time.Now())

	if kitchenID := c.Query("kitchenId"); kitchenID != "" {
		query = query.Where("kitchen_id = ?", kitchenID)
	}

	var slots []models.DeliverySlot
	if err := query.Order("start_time asc").Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch delivery slots",
			Error:   err.Error(),
		})
	}

	type slotView struct {
		models.DeliverySlot
		Window    string `json:"window"`
		Available bool   `json:"available"`
	}

	views := make([]slotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, slotView{
			DeliverySlot: slot,
			Window:       utils.FormatSlotWindow(slot.StartTime, slot.EndTime),
			Available:    slot.HasCapacity(),
		})
	}

	return c.JSON(views)
}
