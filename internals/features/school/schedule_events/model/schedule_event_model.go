package model

import (
	"time"

	"github.com/google/uuid"
)

// EventType jenis agenda kalender sekolah.
type EventType string

const (
	EventTypeExam     EventType = "exam"
	EventTypeHoliday  EventType = "holiday"
	EventTypeDeadline EventType = "deadline"
	EventTypeEvent    EventType = "event"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeExam, EventTypeHoliday, EventTypeDeadline, EventTypeEvent:
		return true
	}
	return false
}

// ScheduleEventModel merepresentasikan tabel `schedule_events`.
// classroom_id NULL berarti event berlaku untuk seluruh sekolah.
type ScheduleEventModel struct {
	ScheduleEventID          uuid.UUID  `json:"schedule_event_id" gorm:"column:schedule_event_id;type:uuid;primaryKey"`
	ScheduleEventSchoolID    uuid.UUID  `json:"schedule_event_school_id" gorm:"column:schedule_event_school_id;type:uuid;not null;index:idx_schedule_events_school_start,priority:1"`
	ScheduleEventClassroomID *uuid.UUID `json:"schedule_event_classroom_id,omitempty" gorm:"column:schedule_event_classroom_id;type:uuid;index:idx_schedule_events_classroom"`

	ScheduleEventTitle       string    `json:"schedule_event_title" gorm:"column:schedule_event_title;type:varchar(255);not null"`
	ScheduleEventDescription *string   `json:"schedule_event_description,omitempty" gorm:"column:schedule_event_description;type:text"`
	ScheduleEventType        EventType `json:"schedule_event_type" gorm:"column:schedule_event_type;type:varchar(20);not null"`

	ScheduleEventStartDate time.Time  `json:"schedule_event_start_date" gorm:"column:schedule_event_start_date;not null;index:idx_schedule_events_school_start,priority:2"`
	ScheduleEventEndDate   *time.Time `json:"schedule_event_end_date,omitempty" gorm:"column:schedule_event_end_date"`

	ScheduleEventCreatedByUserID uuid.UUID `json:"schedule_event_created_by_user_id" gorm:"column:schedule_event_created_by_user_id;type:uuid;not null"`

	ScheduleEventCreatedAt time.Time `json:"schedule_event_created_at" gorm:"column:schedule_event_created_at;not null;autoCreateTime"`
	ScheduleEventUpdatedAt time.Time `json:"schedule_event_updated_at" gorm:"column:schedule_event_updated_at;not null;autoUpdateTime"`
}

func (ScheduleEventModel) TableName() string {
	return "schedule_events"
}
