// file: internals/features/school/home/controller/home_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	assignmentDTO "schoolku_backend/internals/features/school/assignments/dto"
	assignmentService "schoolku_backend/internals/features/school/assignments/service"
	scheduleDTO "schoolku_backend/internals/features/school/schedule_events/dto"
	scheduleService "schoolku_backend/internals/features/school/schedule_events/service"
	schoolDTO "schoolku_backend/internals/features/school/schools/dto"
	schoolService "schoolku_backend/internals/features/school/schools/service"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userService "schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
)

// Jumlah maksimal item per seksi dashboard.
const homeSectionLimit = 5

type HomeController struct {
	DB *gorm.DB
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{DB: db}
}

// 🏠 GET /api/home — ringkasan dashboard sesuai role.
// Siswa: tugas belum dikumpulkan, nilai terbaru, agenda terdekat.
// Role lain: data sekolahnya + daftar kosong.
func (ctrl *HomeController) Index(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	payload := fiber.Map{
		"user":                userDTO.FromModel(actor),
		"pending_assignments": []assignmentDTO.AssignmentResponse{},
		"graded_submissions":  []assignmentDTO.SubmissionResponse{},
		"upcoming_events":     []scheduleDTO.ScheduleEventResponse{},
	}

	if actor.UserRole == constants.RoleStudent {
		pending, err := assignmentService.PendingAssignments(ctrl.DB, actor, homeSectionLimit)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		graded, err := assignmentService.GradedSubmissions(ctrl.DB, actor, homeSectionLimit)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		events, err := scheduleService.UpcomingEvents(ctrl.DB, actor, time.Now(), homeSectionLimit)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		payload["pending_assignments"] = assignmentDTO.FromModels(pending)
		payload["graded_submissions"] = assignmentDTO.FromSubmissionModels(graded)
		payload["upcoming_events"] = scheduleDTO.FromModels(events)
	} else if actor.HasSchool() {
		school, err := schoolService.GetSchool(ctrl.DB, *actor.UserSchoolID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		payload["school"] = schoolDTO.FromModel(school)
	}

	return helper.Success(c, "Dashboard", payload)
}
