package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/controllers/admin"
	"github.com/khanakart/khanakart-api/middleware"
)

// SetupAdminRoutes configures the admin dashboard and CRUD routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.Protected(), middleware.RequireAdmin())

	adminGroup.Get("/dashboard", admin.GetDashboardOverview)

	adminGroup.Post("/products", admin.CreateProduct)
	adminGroup.Put("/products/:id", admin.UpdateProduct)
	adminGroup.Patch("/products/:id/stock", admin.SetProductStock)
	adminGroup.Delete("/products/:id", admin.DeleteProduct)
	adminGroup.Post("/products/:id/image", admin.UploadProductImage)

	adminGroup.Post("/kitchens", admin.CreateKitchen)
	adminGroup.Put("/kitchens/:id", admin.UpdateKitchen)
	adminGroup.Patch("/kitchens/:id/active", admin.SetKitchenActive)
	adminGroup.Delete("/kitchens/:id", admin.DeleteKitchen)

	adminGroup.Post("/categories", admin.CreateCategory)
	adminGroup.Put("/categories/:id", admin.UpdateCategory)
	adminGroup.Delete("/categories/:id", admin.DeleteCategory)

	adminGroup.Post("/delivery-slots", admin.CreateDeliverySlot)
	adminGroup.Put("/delivery-slots/:id", admin.UpdateDeliverySlot)
	adminGroup.Delete("/delivery-slots/:id", admin.DeleteDeliverySlot)

	adminGroup.Get("/orders", admin.ListOrders)
	adminGroup.Patch("/orders/:id/status", admin.UpdateOrderStatus)
}
