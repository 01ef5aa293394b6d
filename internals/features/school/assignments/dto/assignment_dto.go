// file: internals/features/school/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/assignments/model"
)

type CreateAssignmentRequest struct {
	AssignmentTitle          string     `json:"assignment_title" validate:"required,min=3,max=255"`
	AssignmentDescription    *string    `json:"assignment_description" validate:"omitempty,max=10000"`
	AssignmentDueDate        *time.Time `json:"assignment_due_date"`
	AssignmentSubmissionType string     `json:"assignment_submission_type" validate:"required,oneof=single multiple"`
}

type SubmitRequest struct {
	AssignmentSubmissionContent string `json:"assignment_submission_content" validate:"required,max=50000"`
}

type GradeRequest struct {
	AssignmentSubmissionGrade    float64 `json:"assignment_submission_grade" validate:"gte=0,lte=100"`
	AssignmentSubmissionFeedback *string `json:"assignment_submission_feedback" validate:"omitempty,max=5000"`
}

type AssignmentResponse struct {
	AssignmentID             uuid.UUID  `json:"assignment_id"`
	AssignmentClassroomID    uuid.UUID  `json:"assignment_classroom_id"`
	AssignmentTitle          string     `json:"assignment_title"`
	AssignmentDescription    *string    `json:"assignment_description,omitempty"`
	AssignmentDueDate        *time.Time `json:"assignment_due_date,omitempty"`
	AssignmentSubmissionType string     `json:"assignment_submission_type"`
	AssignmentCreatedAt      time.Time  `json:"assignment_created_at"`
}

type SubmissionResponse struct {
	AssignmentSubmissionID           uuid.UUID `json:"assignment_submission_id"`
	AssignmentSubmissionAssignmentID uuid.UUID `json:"assignment_submission_assignment_id"`
	AssignmentSubmissionStudentID    uuid.UUID `json:"assignment_submission_student_id"`
	AssignmentSubmissionContent      string    `json:"assignment_submission_content"`
	AssignmentSubmissionSubmittedAt  time.Time `json:"assignment_submission_submitted_at"`
	AssignmentSubmissionStatus       string    `json:"assignment_submission_status"`
	AssignmentSubmissionGrade        *float64  `json:"assignment_submission_grade,omitempty"`
	AssignmentSubmissionFeedback     *string   `json:"assignment_submission_feedback,omitempty"`
}

// AssignmentDetailResponse untuk halaman detail tugas.
// Submissions berisi satu elemen (milik sendiri) untuk siswa,
// atau seluruh pengumpulan untuk pengajar.
type AssignmentDetailResponse struct {
	AssignmentResponse
	Submissions []SubmissionResponse `json:"submissions"`
}

func FromModel(a *model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:             a.AssignmentID,
		AssignmentClassroomID:    a.AssignmentClassroomID,
		AssignmentTitle:          a.AssignmentTitle,
		AssignmentDescription:    a.AssignmentDescription,
		AssignmentDueDate:        a.AssignmentDueDate,
		AssignmentSubmissionType: string(a.AssignmentSubmissionType),
		AssignmentCreatedAt:      a.AssignmentCreatedAt,
	}
}

func FromModels(list []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

func FromSubmissionModel(s *model.AssignmentSubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		AssignmentSubmissionID:           s.AssignmentSubmissionID,
		AssignmentSubmissionAssignmentID: s.AssignmentSubmissionAssignmentID,
		AssignmentSubmissionStudentID:    s.AssignmentSubmissionStudentID,
		AssignmentSubmissionContent:      s.AssignmentSubmissionContent,
		AssignmentSubmissionSubmittedAt:  s.AssignmentSubmissionSubmittedAt,
		AssignmentSubmissionStatus:       string(s.AssignmentSubmissionStatus),
		AssignmentSubmissionGrade:        s.AssignmentSubmissionGrade,
		AssignmentSubmissionFeedback:     s.AssignmentSubmissionFeedback,
	}
}

func FromSubmissionModels(list []model.AssignmentSubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromSubmissionModel(&list[i]))
	}
	return out
}
