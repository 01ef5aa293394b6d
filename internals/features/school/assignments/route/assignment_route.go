// file: internals/features/school/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	assignmentController "schoolku_backend/internals/features/school/assignments/controller"
	middleware "schoolku_backend/internals/middlewares/features"
)

// AssignmentRoutes: tugas bersarang di kelas, submission & grading flat
// karena ID-nya sudah unik global.
func AssignmentRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := assignmentController.NewAssignmentController(db)

	classrooms := protected.Group("/classrooms")
	classrooms.Get("/:id/assignments", ctrl.Index)
	classrooms.Post("/:id/assignments", middleware.RequireRoles(constants.TeacherAndAbove...), ctrl.Store)

	assignments := protected.Group("/assignments")
	assignments.Get("/:id", ctrl.Show)
	assignments.Post("/:id/submit", middleware.RequireRoles(constants.RoleStudent), ctrl.Submit)

	submissions := protected.Group("/submissions")
	submissions.Post("/:id/grade", middleware.RequireRoles(constants.TeacherAndAbove...), ctrl.Grade)
}
