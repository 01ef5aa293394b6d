package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolModel merepresentasikan tabel `schools`.
// Satu principal memiliki tepat satu sekolah (unique pada principal_id).
type SchoolModel struct {
	SchoolID          uuid.UUID `json:"school_id" gorm:"column:school_id;type:uuid;primaryKey"`
	SchoolName        string    `json:"school_name" gorm:"column:school_name;type:varchar(255);not null"`
	SchoolPrincipalID uuid.UUID `json:"school_principal_id" gorm:"column:school_principal_id;type:uuid;uniqueIndex:uq_schools_principal;not null"`

	SchoolCreatedAt time.Time `json:"school_created_at" gorm:"column:school_created_at;not null;autoCreateTime"`
	SchoolUpdatedAt time.Time `json:"school_updated_at" gorm:"column:school_updated_at;not null;autoUpdateTime"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
