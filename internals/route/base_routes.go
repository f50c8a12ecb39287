package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	databases "rupeess_backend/internals/databases"
)

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Rupeess directory & education API 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("panic handler check")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Not configured"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if databases.DB != nil {
			dbStatus = "Connected"
			if sqlDB, err := databases.DB.DB(); err != nil || sqlDB.Ping() != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
