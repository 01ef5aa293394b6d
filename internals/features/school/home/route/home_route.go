// file: internals/features/school/home/route/home_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeController "schoolku_backend/internals/features/school/home/controller"
)

// HomeRoutes: dashboard ringkasan per user.
func HomeRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := homeController.NewHomeController(db)
	protected.Get("/home", ctrl.Index)
}
