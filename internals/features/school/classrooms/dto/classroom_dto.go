// file: internals/features/school/classrooms/dto/classroom_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	assignmentDTO "schoolku_backend/internals/features/school/assignments/dto"
	model "schoolku_backend/internals/features/school/classrooms/model"
	userDTO "schoolku_backend/internals/features/users/user/dto"
)

type CreateClassroomRequest struct {
	ClassroomName        string  `json:"classroom_name" validate:"required,min=3,max=255"`
	ClassroomDescription *string `json:"classroom_description" validate:"omitempty,max=5000"`
}

type AddTeacherRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
}

type EnrollStudentRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
}

type JoinClassroomRequest struct {
	ClassroomCode string `json:"classroom_code" validate:"required,len=6"`
}

type ClassroomResponse struct {
	ClassroomID          uuid.UUID `json:"classroom_id"`
	ClassroomSchoolID    uuid.UUID `json:"classroom_school_id"`
	ClassroomName        string    `json:"classroom_name"`
	ClassroomDescription *string   `json:"classroom_description,omitempty"`
	ClassroomCode        string    `json:"classroom_code"`
	ClassroomCreatedAt   time.Time `json:"classroom_created_at"`
}

// ClassroomDetailResponse untuk halaman kelola: kelas + roster + daftar tugas.
// Submissions per tugas sudah disaring sesuai viewer (siswa hanya miliknya).
type ClassroomDetailResponse struct {
	ClassroomResponse
	Teachers    []userDTO.UserResponse                   `json:"teachers"`
	Students    []userDTO.UserResponse                   `json:"students"`
	Assignments []assignmentDTO.AssignmentDetailResponse `json:"assignments"`
}

func FromModel(room *model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:          room.ClassroomID,
		ClassroomSchoolID:    room.ClassroomSchoolID,
		ClassroomName:        room.ClassroomName,
		ClassroomDescription: room.ClassroomDescription,
		ClassroomCode:        room.ClassroomCode,
		ClassroomCreatedAt:   room.ClassroomCreatedAt,
	}
}

func FromModels(rooms []model.ClassroomModel) []ClassroomResponse {
	out := make([]ClassroomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, FromModel(&rooms[i]))
	}
	return out
}
