// file: internals/features/school/assignments/controller/assignment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	assignmentDTO "schoolku_backend/internals/features/school/assignments/dto"
	"schoolku_backend/internals/features/school/assignments/model"
	assignmentService "schoolku_backend/internals/features/school/assignments/service"
	userService "schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db, Validator: validator.New()}
}

// 📋 GET /api/classrooms/:id/assignments — daftar tugas sebuah kelas.
func (ctrl *AssignmentController) Index(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	probe := model.AssignmentModel{AssignmentClassroomID: classroomID}
	ok, err := assignmentService.CanViewAssignment(ctrl.DB, actor, &probe)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Unauthorized action.")
	}

	list, err := assignmentService.AssignmentsIn(ctrl.DB, classroomID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar tugas", assignmentDTO.FromModels(list))
}

// ➕ POST /api/classrooms/:id/assignments — buat tugas baru.
func (ctrl *AssignmentController) Store(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req assignmentDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	assignment, err := assignmentService.CreateAssignment(ctrl.DB, actor, assignmentService.CreateAssignmentInput{
		ClassroomID:    classroomID,
		Title:          req.AssignmentTitle,
		Description:    req.AssignmentDescription,
		DueDate:        req.AssignmentDueDate,
		SubmissionType: model.SubmissionType(req.AssignmentSubmissionType),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tugas berhasil dibuat", assignmentDTO.FromModel(assignment))
}

// 🔍 GET /api/assignments/:id — detail tugas.
// Siswa hanya melihat pengumpulannya sendiri; pengajar melihat semuanya.
func (ctrl *AssignmentController) Show(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	assignment, err := assignmentService.GetAssignment(ctrl.DB, assignmentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ok, err := assignmentService.CanViewAssignment(ctrl.DB, actor, assignment)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Unauthorized action.")
	}

	var submissions []model.AssignmentSubmissionModel
	if actor.UserRole == constants.RoleStudent {
		own, err := assignmentService.SubmissionOf(ctrl.DB, assignment.AssignmentID, actor.UserID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if own != nil {
			submissions = append(submissions, *own)
		}
	} else {
		submissions, err = assignmentService.SubmissionsFor(ctrl.DB, assignment.AssignmentID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	return helper.Success(c, "Detail tugas", assignmentDTO.AssignmentDetailResponse{
		AssignmentResponse: assignmentDTO.FromModel(assignment),
		Submissions:        assignmentDTO.FromSubmissionModels(submissions),
	})
}

// 📨 POST /api/assignments/:id/submissions — kumpulkan jawaban.
func (ctrl *AssignmentController) Submit(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var req assignmentDTO.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sub, err := assignmentService.Submit(ctrl.DB, actor, assignmentID, req.AssignmentSubmissionContent)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jawaban terkumpul", assignmentDTO.FromSubmissionModel(sub))
}

// 💯 POST /api/submissions/:id/grade — nilai satu pengumpulan.
func (ctrl *AssignmentController) Grade(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	var req assignmentDTO.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sub, err := assignmentService.Grade(ctrl.DB, actor, assignmentService.GradeInput{
		SubmissionID: submissionID,
		Grade:        req.AssignmentSubmissionGrade,
		Feedback:     req.AssignmentSubmissionFeedback,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Penilaian tersimpan", assignmentDTO.FromSubmissionModel(sub))
}
