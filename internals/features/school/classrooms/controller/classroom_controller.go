// file: internals/features/school/classrooms/controller/classroom_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	assignmentDTO "schoolku_backend/internals/features/school/assignments/dto"
	assignmentModel "schoolku_backend/internals/features/school/assignments/model"
	assignmentService "schoolku_backend/internals/features/school/assignments/service"
	classroomDTO "schoolku_backend/internals/features/school/classrooms/dto"
	classroomService "schoolku_backend/internals/features/school/classrooms/service"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userService "schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
)

type ClassroomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db, Validator: validator.New()}
}

// 📚 GET /api/classrooms — kelas milik user (diajar atau diikuti).
func (ctrl *ClassroomController) Index(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rooms, err := classroomService.ClassroomsFor(ctrl.DB, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar kelas", classroomDTO.FromModels(rooms))
}

// ➕ POST /api/classrooms — buat kelas baru, creator otomatis jadi pengajar.
func (ctrl *ClassroomController) Store(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req classroomDTO.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	room, err := classroomService.CreateClassroom(ctrl.DB, actor, req.ClassroomName, req.ClassroomDescription)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas berhasil dibuat", classroomDTO.FromModel(room))
}

// 🔍 GET /api/classrooms/:id/manage — kelas + roster + daftar tugas.
// Siswa yang terdaftar boleh melihat, tapi hanya submission miliknya sendiri.
func (ctrl *ClassroomController) Manage(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	room, err := classroomService.GetClassroom(ctrl.DB, classroomID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	asStudent := actor.UserRole == constants.RoleStudent
	if asStudent {
		enrolled, err := classroomService.IsStudentOf(ctrl.DB, room.ClassroomID, actor.UserID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if !enrolled {
			return helper.Error(c, fiber.StatusForbidden, "Unauthorized action.")
		}
	} else {
		ok, err := classroomService.CanManageClassroom(ctrl.DB, actor, room)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if !ok {
			return helper.Error(c, fiber.StatusForbidden, "Unauthorized action.")
		}
	}

	teachers, err := classroomService.TeachersOf(ctrl.DB, room.ClassroomID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	students, err := classroomService.StudentsOf(ctrl.DB, room.ClassroomID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assignments, err := assignmentService.AssignmentsIn(ctrl.DB, room.ClassroomID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	details := make([]assignmentDTO.AssignmentDetailResponse, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		var subs []assignmentModel.AssignmentSubmissionModel
		if asStudent {
			own, err := assignmentService.SubmissionOf(ctrl.DB, a.AssignmentID, actor.UserID)
			if err != nil {
				return helper.FromFiberError(c, err)
			}
			if own != nil {
				subs = append(subs, *own)
			}
		} else {
			subs, err = assignmentService.SubmissionsFor(ctrl.DB, a.AssignmentID)
			if err != nil {
				return helper.FromFiberError(c, err)
			}
		}
		details = append(details, assignmentDTO.AssignmentDetailResponse{
			AssignmentResponse: assignmentDTO.FromModel(a),
			Submissions:        assignmentDTO.FromSubmissionModels(subs),
		})
	}

	return helper.Success(c, "Detail kelas", classroomDTO.ClassroomDetailResponse{
		ClassroomResponse: classroomDTO.FromModel(room),
		Teachers:          userDTO.FromModels(teachers),
		Students:          userDTO.FromModels(students),
		Assignments:       details,
	})
}

// 👩‍🏫 POST /api/classrooms/:id/add-teacher — tambah co-teacher via email.
func (ctrl *ClassroomController) AddTeacher(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req classroomDTO.AddTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher, err := classroomService.AddCoTeacher(ctrl.DB, actor, classroomID, req.UserEmail)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Guru ditambahkan ke kelas", userDTO.FromModel(teacher))
}

// 🧑‍🎓 POST /api/classrooms/:id/enroll-student — daftarkan siswa via email.
func (ctrl *ClassroomController) EnrollStudent(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req classroomDTO.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := classroomService.EnrollStudentByEmail(ctrl.DB, actor, classroomID, req.UserEmail)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Siswa terdaftar di kelas", userDTO.FromModel(student))
}

// ➖ DELETE /api/classrooms/:id/remove-student/:student_id — keluarkan siswa.
func (ctrl *ClassroomController) RemoveStudent(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	if err := classroomService.RemoveStudent(ctrl.DB, actor, classroomID, studentID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Siswa dikeluarkan dari kelas", nil)
}

// 🎟️ POST /api/classrooms/join — siswa bergabung pakai kode kelas.
func (ctrl *ClassroomController) Join(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req classroomDTO.JoinClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	room, err := classroomService.JoinByCode(ctrl.DB, actor, req.ClassroomCode)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Berhasil bergabung ke kelas", classroomDTO.FromModel(room))
}
