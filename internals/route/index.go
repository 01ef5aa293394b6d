// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	assignmentRoute "schoolku_backend/internals/features/school/assignments/route"
	classroomRoute "schoolku_backend/internals/features/school/classrooms/route"
	homeRoute "schoolku_backend/internals/features/school/home/route"
	scheduleRoute "schoolku_backend/internals/features/school/schedule_events/route"
	schoolRoute "schoolku_backend/internals/features/school/schools/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	"schoolku_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh route aplikasi:
// publik (/health, /api/auth/*) lalu grup /api di belakang JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	protected := api.Group("", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	authRoute.AuthProtectedRoutes(protected, db)
	homeRoute.HomeRoutes(protected, db)
	schoolRoute.SchoolRoutes(protected, db)
	classroomRoute.ClassroomRoutes(protected, db)
	assignmentRoute.AssignmentRoutes(protected, db)
	scheduleRoute.ScheduleEventRoutes(protected, db)
}
