package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/khanakart/khanakart-api/cron"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/redis"
	"github.com/khanakart/khanakart-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	db.Seed()

	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
	}

	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("KhanaKart API is running")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupONDCRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
