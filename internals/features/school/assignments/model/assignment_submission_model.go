package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus status pengumpulan per (assignment, student).
type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusReviewed  SubmissionStatus = "reviewed"
	SubmissionStatusCompleted SubmissionStatus = "completed"
)

// AssignmentSubmissionModel merepresentasikan tabel `assignment_submissions`.
// Pasangan (assignment_id, student_id) unique: maksimal satu baris per siswa,
// resubmit menimpa baris yang sama lewat upsert.
type AssignmentSubmissionModel struct {
	AssignmentSubmissionID           uuid.UUID `json:"assignment_submission_id" gorm:"column:assignment_submission_id;type:uuid;primaryKey"`
	AssignmentSubmissionAssignmentID uuid.UUID `json:"assignment_submission_assignment_id" gorm:"column:assignment_submission_assignment_id;type:uuid;not null;uniqueIndex:uq_assignment_submissions_pair,priority:1"`
	AssignmentSubmissionStudentID    uuid.UUID `json:"assignment_submission_student_id" gorm:"column:assignment_submission_student_id;type:uuid;not null;uniqueIndex:uq_assignment_submissions_pair,priority:2;index:idx_assignment_submissions_student"`

	AssignmentSubmissionContent     string    `json:"assignment_submission_content" gorm:"column:assignment_submission_content;type:text;not null"`
	AssignmentSubmissionSubmittedAt time.Time `json:"assignment_submission_submitted_at" gorm:"column:assignment_submission_submitted_at;not null"`

	AssignmentSubmissionStatus SubmissionStatus `json:"assignment_submission_status" gorm:"column:assignment_submission_status;type:varchar(20);not null;default:'submitted'"`

	// Hanya diisi lewat operasi grade; di-null-kan lagi saat resubmit (multiple).
	AssignmentSubmissionGrade    *float64 `json:"assignment_submission_grade,omitempty" gorm:"column:assignment_submission_grade;type:numeric(5,2)"`
	AssignmentSubmissionFeedback *string  `json:"assignment_submission_feedback,omitempty" gorm:"column:assignment_submission_feedback;type:text"`

	AssignmentSubmissionCreatedAt time.Time `json:"assignment_submission_created_at" gorm:"column:assignment_submission_created_at;not null;autoCreateTime"`
	AssignmentSubmissionUpdatedAt time.Time `json:"assignment_submission_updated_at" gorm:"column:assignment_submission_updated_at;not null;autoUpdateTime"`
}

func (AssignmentSubmissionModel) TableName() string {
	return "assignment_submissions"
}
