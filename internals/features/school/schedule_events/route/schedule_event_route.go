// file: internals/features/school/schedule_events/route/schedule_event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	scheduleController "schoolku_backend/internals/features/school/schedule_events/controller"
	middleware "schoolku_backend/internals/middlewares/features"
)

// ScheduleEventRoutes: kalender sekolah.
func ScheduleEventRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleEventController(db)

	group := protected.Group("/schedule")
	group.Get("/", ctrl.Index)
	group.Post("/", middleware.RequireRoles(constants.TeacherAndAbove...), ctrl.Store)
}
