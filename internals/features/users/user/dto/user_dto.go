// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"github.com/google/uuid"

	userModel "schoolku_backend/internals/features/users/user/model"
)

// UserResponse: representasi publik user, tanpa password hash.
type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
}

func FromModel(u *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		UserName:     u.UserName,
		UserEmail:    u.UserEmail,
		UserRole:     u.UserRole.String(),
		UserSchoolID: u.UserSchoolID,
	}
}

func FromModels(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}
