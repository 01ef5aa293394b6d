package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionType kebijakan pengumpulan per tugas.
type SubmissionType string

const (
	SubmissionTypeSingle   SubmissionType = "single"   // satu kali, immutable
	SubmissionTypeMultiple SubmissionType = "multiple" // boleh resubmit, nilai lama hangus
)

func (t SubmissionType) Valid() bool {
	return t == SubmissionTypeSingle || t == SubmissionTypeMultiple
}

// AssignmentModel merepresentasikan tabel `assignments`.
// Immutable setelah create (tidak ada edit/delete).
type AssignmentModel struct {
	AssignmentID          uuid.UUID `json:"assignment_id" gorm:"column:assignment_id;type:uuid;primaryKey"`
	AssignmentClassroomID uuid.UUID `json:"assignment_classroom_id" gorm:"column:assignment_classroom_id;type:uuid;not null;index:idx_assignments_classroom"`

	AssignmentTitle       string     `json:"assignment_title" gorm:"column:assignment_title;type:varchar(255);not null"`
	AssignmentDescription *string    `json:"assignment_description,omitempty" gorm:"column:assignment_description;type:text"`
	AssignmentDueDate     *time.Time `json:"assignment_due_date,omitempty" gorm:"column:assignment_due_date"`

	AssignmentSubmissionType SubmissionType `json:"assignment_submission_type" gorm:"column:assignment_submission_type;type:varchar(20);not null"`

	AssignmentCreatedByUserID uuid.UUID `json:"assignment_created_by_user_id" gorm:"column:assignment_created_by_user_id;type:uuid;not null"`

	AssignmentCreatedAt time.Time `json:"assignment_created_at" gorm:"column:assignment_created_at;not null;autoCreateTime"`
	AssignmentUpdatedAt time.Time `json:"assignment_updated_at" gorm:"column:assignment_updated_at;not null;autoUpdateTime"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}
