// file: internals/route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "schoolku_backend/internals/databases"
)

var startedAt = time.Now()

// BaseRoutes: endpoint tanpa auth untuk monitoring.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if database.Ping(db) != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     dbStatus,
			"uptime": time.Since(startedAt).Round(time.Second).String(),
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
