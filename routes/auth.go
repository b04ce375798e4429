package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/controllers"
	"github.com/khanakart/khanakart-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/send-otp", controllers.SendOTP)
	auth.Post("/verify-otp", controllers.VerifyOTP)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)

	app.Patch("/api/profile", middleware.Protected(), controllers.UpdateProfile)
}
