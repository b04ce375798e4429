package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/controllers/ondc"
)

// SetupONDCRoutes configures the ONDC passthrough endpoints
func SetupONDCRoutes(app *fiber.App) {
	gateway := app.Group("/api/ondc")
	gateway.Post("/:action", ondc.Forward)
}
