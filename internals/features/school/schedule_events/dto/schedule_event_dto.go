// file: internals/features/school/schedule_events/dto/schedule_event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/schedule_events/model"
)

type CreateEventRequest struct {
	ScheduleEventClassroomID *uuid.UUID `json:"schedule_event_classroom_id"`
	ScheduleEventTitle       string     `json:"schedule_event_title" validate:"required,min=3,max=255"`
	ScheduleEventDescription *string    `json:"schedule_event_description" validate:"omitempty,max=5000"`
	ScheduleEventType        string     `json:"schedule_event_type" validate:"required,oneof=exam holiday deadline event"`
	ScheduleEventStartDate   time.Time  `json:"schedule_event_start_date" validate:"required"`
	ScheduleEventEndDate     *time.Time `json:"schedule_event_end_date"`
}

type ScheduleEventResponse struct {
	ScheduleEventID          uuid.UUID  `json:"schedule_event_id"`
	ScheduleEventSchoolID    uuid.UUID  `json:"schedule_event_school_id"`
	ScheduleEventClassroomID *uuid.UUID `json:"schedule_event_classroom_id,omitempty"`
	ScheduleEventTitle       string     `json:"schedule_event_title"`
	ScheduleEventDescription *string    `json:"schedule_event_description,omitempty"`
	ScheduleEventType        string     `json:"schedule_event_type"`
	ScheduleEventStartDate   time.Time  `json:"schedule_event_start_date"`
	ScheduleEventEndDate     *time.Time `json:"schedule_event_end_date,omitempty"`
}

func FromModel(e *model.ScheduleEventModel) ScheduleEventResponse {
	return ScheduleEventResponse{
		ScheduleEventID:          e.ScheduleEventID,
		ScheduleEventSchoolID:    e.ScheduleEventSchoolID,
		ScheduleEventClassroomID: e.ScheduleEventClassroomID,
		ScheduleEventTitle:       e.ScheduleEventTitle,
		ScheduleEventDescription: e.ScheduleEventDescription,
		ScheduleEventType:        string(e.ScheduleEventType),
		ScheduleEventStartDate:   e.ScheduleEventStartDate,
		ScheduleEventEndDate:     e.ScheduleEventEndDate,
	}
}

func FromModels(list []model.ScheduleEventModel) []ScheduleEventResponse {
	out := make([]ScheduleEventResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
