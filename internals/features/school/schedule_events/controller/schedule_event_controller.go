// file: internals/features/school/schedule_events/controller/schedule_event_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleDTO "schoolku_backend/internals/features/school/schedule_events/dto"
	"schoolku_backend/internals/features/school/schedule_events/model"
	scheduleService "schoolku_backend/internals/features/school/schedule_events/service"
	userService "schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
)

type ScheduleEventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScheduleEventController(db *gorm.DB) *ScheduleEventController {
	return &ScheduleEventController{DB: db, Validator: validator.New()}
}

// 📅 GET /api/schedule — seluruh agenda yang terlihat oleh user.
func (ctrl *ScheduleEventController) Index(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	events, err := scheduleService.VisibleEvents(ctrl.DB, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar agenda", scheduleDTO.FromModels(events))
}

// ➕ POST /api/schedule — buat agenda sekolah atau kelas.
func (ctrl *ScheduleEventController) Store(c *fiber.Ctx) error {
	actor, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req scheduleDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event, err := scheduleService.CreateEvent(ctrl.DB, actor, scheduleService.CreateEventInput{
		ClassroomID: req.ScheduleEventClassroomID,
		Title:       req.ScheduleEventTitle,
		Description: req.ScheduleEventDescription,
		Type:        model.EventType(req.ScheduleEventType),
		StartDate:   req.ScheduleEventStartDate,
		EndDate:     req.ScheduleEventEndDate,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Agenda berhasil dibuat", scheduleDTO.FromModel(event))
}
