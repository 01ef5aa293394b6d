// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/users/auth/controller"
	userController "schoolku_backend/internals/features/users/user/controller"
	"schoolku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (register & login), masing-masing dengan
// rate limiter sendiri.
func AuthRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	group := public.Group("/auth")
	group.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthProtectedRoutes: endpoint yang butuh token valid.
func AuthProtectedRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	group := protected.Group("/auth")
	group.Get("/me", ctrl.Me)
}
