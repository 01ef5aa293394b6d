package model

import (
	"time"

	"github.com/google/uuid"
)

// Baris pivot eksplisit (bukan many2many otomatis) supaya keanggotaan
// bisa dicek lewat satu query dan pasangannya dijaga unique di DB.

// ClassroomTeacherModel merepresentasikan tabel `classroom_teachers`.
type ClassroomTeacherModel struct {
	ClassroomTeacherID          uuid.UUID `json:"classroom_teacher_id" gorm:"column:classroom_teacher_id;type:uuid;primaryKey"`
	ClassroomTeacherClassroomID uuid.UUID `json:"classroom_teacher_classroom_id" gorm:"column:classroom_teacher_classroom_id;type:uuid;not null;uniqueIndex:uq_classroom_teachers_pair,priority:1"`
	ClassroomTeacherUserID      uuid.UUID `json:"classroom_teacher_user_id" gorm:"column:classroom_teacher_user_id;type:uuid;not null;uniqueIndex:uq_classroom_teachers_pair,priority:2;index:idx_classroom_teachers_user"`

	ClassroomTeacherCreatedAt time.Time `json:"classroom_teacher_created_at" gorm:"column:classroom_teacher_created_at;not null;autoCreateTime"`
}

func (ClassroomTeacherModel) TableName() string {
	return "classroom_teachers"
}

// ClassroomStudentModel merepresentasikan tabel `classroom_students`.
type ClassroomStudentModel struct {
	ClassroomStudentID          uuid.UUID `json:"classroom_student_id" gorm:"column:classroom_student_id;type:uuid;primaryKey"`
	ClassroomStudentClassroomID uuid.UUID `json:"classroom_student_classroom_id" gorm:"column:classroom_student_classroom_id;type:uuid;not null;uniqueIndex:uq_classroom_students_pair,priority:1"`
	ClassroomStudentUserID      uuid.UUID `json:"classroom_student_user_id" gorm:"column:classroom_student_user_id;type:uuid;not null;uniqueIndex:uq_classroom_students_pair,priority:2;index:idx_classroom_students_user"`

	ClassroomStudentCreatedAt time.Time `json:"classroom_student_created_at" gorm:"column:classroom_student_created_at;not null;autoCreateTime"`
}

func (ClassroomStudentModel) TableName() string {
	return "classroom_students"
}
