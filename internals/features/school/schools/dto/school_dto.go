// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/schools/model"
)

type UpsertSchoolRequest struct {
	SchoolName string `json:"school_name" validate:"required,min=3,max=255"`
}

type AddMemberRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
}

type SchoolResponse struct {
	SchoolID          uuid.UUID `json:"school_id"`
	SchoolName        string    `json:"school_name"`
	SchoolPrincipalID uuid.UUID `json:"school_principal_id"`
	SchoolCreatedAt   time.Time `json:"school_created_at"`
}

func FromModel(s *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:          s.SchoolID,
		SchoolName:        s.SchoolName,
		SchoolPrincipalID: s.SchoolPrincipalID,
		SchoolCreatedAt:   s.SchoolCreatedAt,
	}
}
