package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/controllers"
)

// SetupCatalogRoutes configures the public browse endpoints
func SetupCatalogRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/kitchens", controllers.GetAllKitchens)
	api.Get("/kitchens/nearest", controllers.GetNearestKitchen)
	api.Get("/kitchens/:id", controllers.GetKitchen)
	api.Get("/categories", controllers.GetAllCategories)
	api.Get("/products", controllers.GetAllProducts)
	api.Get("/products/:id", controllers.GetProduct)
	api.Get("/delivery-slots", controllers.GetDeliverySlots)
}
