package model

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// UserModel merepresentasikan tabel `users`.
// user_school_id nullable: user belum tentu tergabung ke sekolah.
type UserModel struct {
	UserID       uuid.UUID      `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`
	UserName     string         `json:"user_name" gorm:"column:user_name;type:varchar(120);not null" validate:"required,min=3,max=120"`
	UserEmail    string         `json:"user_email" gorm:"column:user_email;type:varchar(255);uniqueIndex:uq_users_email;not null" validate:"required,email"`
	UserPassword string         `json:"-" gorm:"column:user_password;type:varchar(255);not null"`
	UserRole     constants.Role `json:"user_role" gorm:"column:user_role;type:varchar(20);not null"`

	// Keanggotaan sekolah (nullable)
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty" gorm:"column:user_school_id;type:uuid;index:idx_users_school"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// HasSchool true kalau user sudah tergabung ke sebuah sekolah.
func (u *UserModel) HasSchool() bool {
	return u.UserSchoolID != nil && *u.UserSchoolID != uuid.Nil
}

// InSchool membandingkan keanggotaan dengan sekolah tertentu.
func (u *UserModel) InSchool(schoolID uuid.UUID) bool {
	return u.UserSchoolID != nil && *u.UserSchoolID == schoolID
}
