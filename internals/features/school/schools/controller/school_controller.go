// file: internals/features/school/schools/controller/school_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolDTO "schoolku_backend/internals/features/school/schools/dto"
	schoolService "schoolku_backend/internals/features/school/schools/service"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	userService "schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db, Validator: validator.New()}
}

// 🏫 GET /api/school — sekolah milik principal yang login.
func (ctrl *SchoolController) Show(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	school, err := schoolService.GetSchoolOfPrincipal(ctrl.DB, actor.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail sekolah", schoolDTO.FromModel(school))
}

// 🏫 POST /api/schools — buat atau perbarui sekolah principal (idempotent).
func (ctrl *SchoolController) Upsert(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req schoolDTO.UpsertSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	school, err := schoolService.UpsertSchoolForPrincipal(ctrl.DB, actor, req.SchoolName)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Sekolah tersimpan", schoolDTO.FromModel(school))
}

// ✏️ PUT /api/school — ganti nama sekolah.
func (ctrl *SchoolController) Rename(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req schoolDTO.UpsertSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	school, err := schoolService.RenameSchool(ctrl.DB, actor, req.SchoolName)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Nama sekolah diperbarui", schoolDTO.FromModel(school))
}

// 🗑️ DELETE /api/school — hapus sekolah, seluruh anggota dilepas.
func (ctrl *SchoolController) Delete(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := schoolService.DeleteSchool(ctrl.DB, actor); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Sekolah dihapus", nil)
}

// 👥 GET /api/school/members — daftar anggota sekolah actor, paginated.
func (ctrl *SchoolController) Members(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !actor.HasSchool() {
		return helper.Error(c, fiber.StatusNotFound, "Anda belum memiliki sekolah.")
	}

	p := helper.ResolvePaging(c, 20, 100)
	members, total, err := schoolService.ListMembers(ctrl.DB, *actor.UserSchoolID, p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Daftar anggota sekolah", fiber.Map{
		"members":    userDTO.FromModels(members),
		"pagination": helper.BuildPagination(total, p, len(members)),
	})
}

// ➕ POST /api/schools/add-teacher — gabungkan guru bebas-sekolah via email.
func (ctrl *SchoolController) AddTeacher(c *fiber.Ctx) error {
	return ctrl.addMember(c, schoolService.AddTeacherByEmail, "Guru ditambahkan ke sekolah")
}

// ➕ POST /api/schools/add-student — gabungkan siswa bebas-sekolah via email.
func (ctrl *SchoolController) AddStudent(c *fiber.Ctx) error {
	return ctrl.addMember(c, schoolService.AddStudentByEmail, "Siswa ditambahkan ke sekolah")
}

func (ctrl *SchoolController) addMember(
	c *fiber.Ctx,
	attach func(*gorm.DB, *userModel.UserModel, string) (*userModel.UserModel, error),
	okMessage string,
) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req schoolDTO.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	member, err := attach(ctrl.DB, actor, req.UserEmail)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, okMessage, userDTO.FromModel(member))
}

// 🔄 POST /api/school/members/:id/toggle-manager — teacher ↔ school_manager.
func (ctrl *SchoolController) ToggleManager(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	target, err := schoolService.ToggleManager(ctrl.DB, actor, targetID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Role anggota diperbarui", userDTO.FromModel(target))
}
