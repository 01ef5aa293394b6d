package model

import (
	"time"

	"github.com/google/uuid"
)

// JoinCodeLength panjang kode gabung kelas (huruf besar + angka).
const JoinCodeLength = 6

// ClassroomModel merepresentasikan tabel `classrooms`.
type ClassroomModel struct {
	ClassroomID       uuid.UUID `json:"classroom_id" gorm:"column:classroom_id;type:uuid;primaryKey"`
	ClassroomSchoolID uuid.UUID `json:"classroom_school_id" gorm:"column:classroom_school_id;type:uuid;not null;index:idx_classrooms_school"`

	ClassroomName        string  `json:"classroom_name" gorm:"column:classroom_name;type:varchar(255);not null"`
	ClassroomDescription *string `json:"classroom_description,omitempty" gorm:"column:classroom_description;type:text"`

	// Kode gabung 6 karakter, immutable setelah create.
	ClassroomCode string `json:"classroom_code" gorm:"column:classroom_code;type:varchar(6);uniqueIndex:uq_classrooms_code;not null"`

	ClassroomCreatedAt time.Time `json:"classroom_created_at" gorm:"column:classroom_created_at;not null;autoCreateTime"`
	ClassroomUpdatedAt time.Time `json:"classroom_updated_at" gorm:"column:classroom_updated_at;not null;autoUpdateTime"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
