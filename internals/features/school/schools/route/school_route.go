// file: internals/features/school/schools/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	schoolController "schoolku_backend/internals/features/school/schools/controller"
	middleware "schoolku_backend/internals/middlewares/features"
)

// SchoolRoutes: manajemen sekolah & keanggotaan. Semuanya di belakang JWT;
// guard role kasar di sini, aturan kepemilikan di service.
func SchoolRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	principalOnly := middleware.RequireRoles(constants.PrincipalOnly...)
	schoolAdmin := middleware.RequireRoles(constants.SchoolAdminRoles...)

	schools := protected.Group("/schools")
	schools.Post("/", principalOnly, ctrl.Upsert)
	schools.Post("/add-teacher", schoolAdmin, ctrl.AddTeacher)
	schools.Post("/add-student", schoolAdmin, ctrl.AddStudent)

	school := protected.Group("/school")
	school.Get("/", principalOnly, ctrl.Show)
	school.Put("/", principalOnly, ctrl.Rename)
	school.Delete("/", principalOnly, ctrl.Delete)
	school.Get("/members", schoolAdmin, ctrl.Members)
	school.Post("/members/:id/toggle-manager", principalOnly, ctrl.ToggleManager)
}
