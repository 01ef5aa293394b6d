// file: internals/features/school/schedule_events/service/schedule_event_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	classroomService "schoolku_backend/internals/features/school/classrooms/service"
	model "schoolku_backend/internals/features/school/schedule_events/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

/* =========================
   Visibility
========================= */

// visibleScope membatasi query ke event yang boleh dilihat user:
// sekolahnya sendiri, dan per-kelas hanya kelas yang dia ikuti/ajar.
// User tanpa sekolah tidak melihat apa pun.
func visibleScope(db *gorm.DB, user *userModel.UserModel) (*gorm.DB, error) {
	if !user.HasSchool() {
		return nil, nil
	}
	classIDs, err := classroomService.ClassroomIDsFor(db, user)
	if err != nil {
		return nil, err
	}

	q := db.Model(&model.ScheduleEventModel{}).
		Where("schedule_event_school_id = ?", *user.UserSchoolID)
	if len(classIDs) == 0 {
		q = q.Where("schedule_event_classroom_id IS NULL")
	} else {
		q = q.Where("schedule_event_classroom_id IS NULL OR schedule_event_classroom_id IN ?", classIDs)
	}
	return q, nil
}

// VisibleEvents: seluruh event dalam scope user, urut tanggal mulai.
func VisibleEvents(db *gorm.DB, user *userModel.UserModel) ([]model.ScheduleEventModel, error) {
	q, err := visibleScope(db, user)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return []model.ScheduleEventModel{}, nil
	}

	var events []model.ScheduleEventModel
	err = q.Order("schedule_event_start_date ASC").Find(&events).Error
	return events, err
}

// UpcomingEvents: event dalam scope yang mulai >= now, maksimal limit baris.
func UpcomingEvents(db *gorm.DB, user *userModel.UserModel, now time.Time, limit int) ([]model.ScheduleEventModel, error) {
	q, err := visibleScope(db, user)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return []model.ScheduleEventModel{}, nil
	}

	var events []model.ScheduleEventModel
	err = q.Where("schedule_event_start_date >= ?", now).
		Order("schedule_event_start_date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

/* =========================
   Mutasi
========================= */

type CreateEventInput struct {
	ClassroomID *uuid.UUID
	Title       string
	Description *string
	Type        model.EventType
	StartDate   time.Time
	EndDate     *time.Time
}

// CreateEvent membuat agenda sekolah atau agenda kelas.
// Scope kelas hanya boleh oleh guru yang terikat ke kelas tersebut.
func CreateEvent(db *gorm.DB, actor *userModel.UserModel, in CreateEventInput) (*model.ScheduleEventModel, error) {
	switch actor.UserRole {
	case constants.RoleTeacher, constants.RolePrincipal, constants.RoleSchoolManager:
	default:
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}
	if !actor.HasSchool() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda belum tergabung di sekolah mana pun.")
	}
	if !in.Type.Valid() {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Tipe event harus exam, holiday, deadline, atau event.")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Tanggal selesai tidak boleh sebelum tanggal mulai.")
	}

	if in.ClassroomID != nil {
		room, err := classroomService.GetClassroom(db, *in.ClassroomID)
		if err != nil {
			return nil, err
		}
		if room.ClassroomSchoolID != *actor.UserSchoolID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Kelas tersebut bukan milik sekolah Anda.")
		}
		teaching, err := classroomService.IsTeacherOf(db, room.ClassroomID, actor.UserID)
		if err != nil {
			return nil, err
		}
		if !teaching {
			return nil, fiber.NewError(fiber.StatusForbidden, "Hanya guru kelas yang boleh membuat agenda kelas.")
		}
	}

	event := model.ScheduleEventModel{
		ScheduleEventID:              uuid.New(),
		ScheduleEventSchoolID:        *actor.UserSchoolID,
		ScheduleEventClassroomID:     in.ClassroomID,
		ScheduleEventTitle:           in.Title,
		ScheduleEventDescription:     in.Description,
		ScheduleEventType:            in.Type,
		ScheduleEventStartDate:       in.StartDate,
		ScheduleEventEndDate:         in.EndDate,
		ScheduleEventCreatedByUserID: actor.UserID,
	}
	if err := db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}
