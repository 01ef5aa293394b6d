// file: internals/features/school/assignments/service/assignment_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/constants"
	model "schoolku_backend/internals/features/school/assignments/model"
	classroomService "schoolku_backend/internals/features/school/classrooms/service"
	userModel "schoolku_backend/internals/features/users/user/model"
)

const (
	GradeMin         = 0
	GradeMax         = 100
	FeedbackMaxChars = 5000
)

/* =========================
   Lookups
========================= */

func GetAssignment(db *gorm.DB, id uuid.UUID) (*model.AssignmentModel, error) {
	var assignment model.AssignmentModel
	if err := db.Where("assignment_id = ?", id).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return nil, err
	}
	return &assignment, nil
}

func GetSubmission(db *gorm.DB, id uuid.UUID) (*model.AssignmentSubmissionModel, error) {
	var sub model.AssignmentSubmissionModel
	if err := db.Where("assignment_submission_id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return nil, err
	}
	return &sub, nil
}

// SubmissionOf: baris milik satu siswa untuk satu tugas, nil kalau belum ada.
func SubmissionOf(db *gorm.DB, assignmentID, studentID uuid.UUID) (*model.AssignmentSubmissionModel, error) {
	var sub model.AssignmentSubmissionModel
	err := db.Where("assignment_submission_assignment_id = ? AND assignment_submission_student_id = ?",
		assignmentID, studentID).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// AssignmentsIn: daftar tugas sebuah kelas, terbaru dulu.
func AssignmentsIn(db *gorm.DB, classroomID uuid.UUID) ([]model.AssignmentModel, error) {
	var list []model.AssignmentModel
	err := db.Where("assignment_classroom_id = ?", classroomID).
		Order("assignment_created_at DESC").
		Find(&list).Error
	return list, err
}

// SubmissionsFor: seluruh pengumpulan sebuah tugas (untuk pengajar).
func SubmissionsFor(db *gorm.DB, assignmentID uuid.UUID) ([]model.AssignmentSubmissionModel, error) {
	var list []model.AssignmentSubmissionModel
	err := db.Where("assignment_submission_assignment_id = ?", assignmentID).
		Order("assignment_submission_submitted_at DESC").
		Find(&list).Error
	return list, err
}

/* =========================
   Otorisasi
========================= */

// canManageAssignmentsIn: guru yang terikat ke kelas, atau principal /
// school_manager sekolah pemilik kelas.
func canManageAssignmentsIn(db *gorm.DB, actor *userModel.UserModel, classroomID uuid.UUID) (bool, error) {
	room, err := classroomService.GetClassroom(db, classroomID)
	if err != nil {
		return false, err
	}
	return classroomService.CanManageClassroom(db, actor, room)
}

// CanViewAssignment: pengajar kelas, admin sekolah, atau siswa yang terdaftar.
func CanViewAssignment(db *gorm.DB, actor *userModel.UserModel, assignment *model.AssignmentModel) (bool, error) {
	if actor.UserRole == constants.RoleStudent {
		return classroomService.IsStudentOf(db, assignment.AssignmentClassroomID, actor.UserID)
	}
	return canManageAssignmentsIn(db, actor, assignment.AssignmentClassroomID)
}

/* =========================
   Mutasi
========================= */

type CreateAssignmentInput struct {
	ClassroomID    uuid.UUID
	Title          string
	Description    *string
	DueDate        *time.Time
	SubmissionType model.SubmissionType
}

// CreateAssignment membuat tugas baru di sebuah kelas.
func CreateAssignment(db *gorm.DB, actor *userModel.UserModel, in CreateAssignmentInput) (*model.AssignmentModel, error) {
	if !in.SubmissionType.Valid() {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "submission_type harus single atau multiple.")
	}
	ok, err := canManageAssignmentsIn(db, actor, in.ClassroomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}

	assignment := model.AssignmentModel{
		AssignmentID:              uuid.New(),
		AssignmentClassroomID:     in.ClassroomID,
		AssignmentTitle:           in.Title,
		AssignmentDescription:     in.Description,
		AssignmentDueDate:         in.DueDate,
		AssignmentSubmissionType:  in.SubmissionType,
		AssignmentCreatedByUserID: actor.UserID,
	}
	if err := db.Create(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Submit mengumpulkan (atau mengumpulkan ulang) jawaban siswa.
//
// Aturan state machine:
//   - single + sudah ada baris  → 409, tidak ada mutasi apa pun
//   - multiple + sudah ada baris → timpa content/submitted_at, status balik
//     ke submitted, grade & feedback di-null-kan (nilai lama hangus)
//   - belum ada baris           → insert biasa
//
// Semuanya lewat ON CONFLICT pada pasangan unik (assignment_id, student_id)
// supaya dua submit paralel tidak menghasilkan dua baris: tipe single pakai
// DO NOTHING (yang kalah balapan dapat 409, baris pemenang utuh), tipe
// multiple pakai DO UPDATE.
func Submit(db *gorm.DB, actor *userModel.UserModel, assignmentID uuid.UUID, content string) (*model.AssignmentSubmissionModel, error) {
	if actor.UserRole != constants.RoleStudent {
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}
	assignment, err := GetAssignment(db, assignmentID)
	if err != nil {
		return nil, err
	}
	enrolled, err := classroomService.IsStudentOf(db, assignment.AssignmentClassroomID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak terdaftar di kelas tugas ini.")
	}

	now := time.Now()
	sub := model.AssignmentSubmissionModel{
		AssignmentSubmissionID:           uuid.New(),
		AssignmentSubmissionAssignmentID: assignmentID,
		AssignmentSubmissionStudentID:    actor.UserID,
		AssignmentSubmissionContent:      content,
		AssignmentSubmissionSubmittedAt:  now,
		AssignmentSubmissionStatus:       model.SubmissionStatusSubmitted,
	}
	pair := []clause.Column{
		{Name: "assignment_submission_assignment_id"},
		{Name: "assignment_submission_student_id"},
	}
	if assignment.AssignmentSubmissionType == model.SubmissionTypeSingle {
		res := db.Clauses(clause.OnConflict{Columns: pair, DoNothing: true}).Create(&sub)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "This assignment can only be submitted once.")
		}
	} else {
		err = db.Clauses(clause.OnConflict{
			Columns: pair,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"assignment_submission_content":      content,
				"assignment_submission_submitted_at": now,
				"assignment_submission_status":       model.SubmissionStatusSubmitted,
				"assignment_submission_grade":        nil,
				"assignment_submission_feedback":     nil,
				"assignment_submission_updated_at":   now,
			}),
		}).Create(&sub).Error
		if err != nil {
			return nil, err
		}
	}

	// ON CONFLICT yang menang adalah baris lama; baca ulang supaya ID dan
	// timestamp yang dikembalikan akurat.
	return SubmissionOf(db, assignmentID, actor.UserID)
}

type GradeInput struct {
	SubmissionID uuid.UUID
	Grade        float64
	Feedback     *string
}

// Grade menilai satu pengumpulan. Content & submitted_at tidak disentuh.
func Grade(db *gorm.DB, actor *userModel.UserModel, in GradeInput) (*model.AssignmentSubmissionModel, error) {
	if in.Grade < GradeMin || in.Grade > GradeMax {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Nilai harus di antara 0 dan 100.")
	}
	if in.Feedback != nil && len([]rune(*in.Feedback)) > FeedbackMaxChars {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Feedback maksimal 5000 karakter.")
	}

	sub, err := GetSubmission(db, in.SubmissionID)
	if err != nil {
		return nil, err
	}
	assignment, err := GetAssignment(db, sub.AssignmentSubmissionAssignmentID)
	if err != nil {
		return nil, err
	}
	ok, err := canManageAssignmentsIn(db, actor, assignment.AssignmentClassroomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}

	grade := in.Grade
	sub.AssignmentSubmissionGrade = &grade
	sub.AssignmentSubmissionFeedback = in.Feedback
	sub.AssignmentSubmissionStatus = model.SubmissionStatusReviewed

	err = db.Model(&model.AssignmentSubmissionModel{}).
		Where("assignment_submission_id = ?", sub.AssignmentSubmissionID).
		Updates(map[string]interface{}{
			"assignment_submission_grade":    grade,
			"assignment_submission_feedback": in.Feedback,
			"assignment_submission_status":   model.SubmissionStatusReviewed,
		}).Error
	if err != nil {
		return nil, err
	}
	return sub, nil
}

/* =========================
   Dashboard queries
========================= */

// PendingAssignments: tugas di kelas siswa yang belum pernah dikumpulkan,
// deadline terdekat dulu (NULL di belakang), maksimal limit baris.
func PendingAssignments(db *gorm.DB, student *userModel.UserModel, limit int) ([]model.AssignmentModel, error) {
	classIDs, err := classroomService.EnrolledClassroomIDs(db, student.UserID)
	if err != nil {
		return nil, err
	}
	if len(classIDs) == 0 {
		return []model.AssignmentModel{}, nil
	}

	var list []model.AssignmentModel
	err = db.Where("assignment_classroom_id IN ?", classIDs).
		Where("assignment_id NOT IN (?)",
			db.Model(&model.AssignmentSubmissionModel{}).
				Select("assignment_submission_assignment_id").
				Where("assignment_submission_student_id = ?", student.UserID)).
		Order("assignment_due_date IS NULL").
		Order("assignment_due_date ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// GradedSubmissions: pengumpulan siswa yang sudah dinilai, terbaru dulu.
func GradedSubmissions(db *gorm.DB, student *userModel.UserModel, limit int) ([]model.AssignmentSubmissionModel, error) {
	var list []model.AssignmentSubmissionModel
	err := db.Where("assignment_submission_student_id = ?", student.UserID).
		Where("assignment_submission_grade IS NOT NULL").
		Order("assignment_submission_updated_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
