package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/controllers"
	"github.com/khanakart/khanakart-api/middleware"
)

// SetupOrderRoutes configures all order related routes
func SetupOrderRoutes(app *fiber.App) {
	order := app.Group("/api/orders", middleware.Protected())
	order.Post("/", controllers.CreateOrder)
	order.Get("/", controllers.GetMyOrders)
	order.Get("/:id", controllers.GetOrder)
	order.Post("/:id/cancel", controllers.CancelOrder)
}
