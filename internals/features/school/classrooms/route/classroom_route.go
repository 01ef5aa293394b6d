// file: internals/features/school/classrooms/route/classroom_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	classroomController "schoolku_backend/internals/features/school/classrooms/controller"
	middleware "schoolku_backend/internals/middlewares/features"
)

// ClassroomRoutes: kelas + roster. Join by code khusus siswa.
func ClassroomRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := classroomController.NewClassroomController(db)

	group := protected.Group("/classrooms")

	group.Get("/", ctrl.Index)
	group.Post("/", middleware.RequireRoles(constants.RoleTeacher, constants.RolePrincipal), ctrl.Store)
	group.Post("/join", middleware.RequireRoles(constants.RoleStudent), ctrl.Join)

	group.Get("/:id/manage", ctrl.Manage)
	group.Post("/:id/add-teacher", middleware.RequireRoles(constants.SchoolAdminRoles...), ctrl.AddTeacher)
	group.Post("/:id/enroll-student", middleware.RequireRoles(constants.TeacherAndAbove...), ctrl.EnrollStudent)
	group.Delete("/:id/remove-student/:student_id", middleware.RequireRoles(constants.TeacherAndAbove...), ctrl.RemoveStudent)
}
