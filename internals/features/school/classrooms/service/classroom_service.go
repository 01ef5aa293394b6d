// file: internals/features/school/classrooms/service/classroom_service.go
package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	model "schoolku_backend/internals/features/school/classrooms/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Lookups keanggotaan
========================= */

func GetClassroom(db *gorm.DB, id uuid.UUID) (*model.ClassroomModel, error) {
	var room model.ClassroomModel
	if err := db.Where("classroom_id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Classroom tidak ditemukan")
		}
		return nil, err
	}
	return &room, nil
}

func FindClassroomByCode(db *gorm.DB, code string) (*model.ClassroomModel, error) {
	var room model.ClassroomModel
	if err := db.Where("classroom_code = ?", code).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "No classroom found with this code.")
		}
		return nil, err
	}
	return &room, nil
}

// IsTeacherOf cek lewat store, bukan koleksi yang sudah dimuat di memori.
func IsTeacherOf(db *gorm.DB, classroomID, userID uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&model.ClassroomTeacherModel{}).
		Where("classroom_teacher_classroom_id = ? AND classroom_teacher_user_id = ?", classroomID, userID).
		Count(&n).Error
	return n > 0, err
}

func IsStudentOf(db *gorm.DB, classroomID, userID uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&model.ClassroomStudentModel{}).
		Where("classroom_student_classroom_id = ? AND classroom_student_user_id = ?", classroomID, userID).
		Count(&n).Error
	return n > 0, err
}

func TeachingClassroomIDs(db *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&model.ClassroomTeacherModel{}).
		Where("classroom_teacher_user_id = ?", userID).
		Pluck("classroom_teacher_classroom_id", &ids).Error
	return ids, err
}

func EnrolledClassroomIDs(db *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&model.ClassroomStudentModel{}).
		Where("classroom_student_user_id = ?", userID).
		Pluck("classroom_student_classroom_id", &ids).Error
	return ids, err
}

// ClassroomIDsFor: set kelas milik user sesuai perannya
// (student → roster enrolled, selain itu → roster mengajar).
func ClassroomIDsFor(db *gorm.DB, user *userModel.UserModel) ([]uuid.UUID, error) {
	if user.UserRole == constants.RoleStudent {
		return EnrolledClassroomIDs(db, user.UserID)
	}
	return TeachingClassroomIDs(db, user.UserID)
}

// ClassroomsFor memuat baris classroom untuk daftar "kelas saya".
func ClassroomsFor(db *gorm.DB, user *userModel.UserModel) ([]model.ClassroomModel, error) {
	ids, err := ClassroomIDsFor(db, user)
	if err != nil {
		return nil, err
	}
	rooms := make([]model.ClassroomModel, 0, len(ids))
	if len(ids) == 0 {
		return rooms, nil
	}
	err = db.Where("classroom_id IN ?", ids).
		Order("classroom_name ASC").
		Find(&rooms).Error
	return rooms, err
}

/* =========================
   Otorisasi
========================= */

// CanManageClassroom: teacher/principal yang sudah terpasang sebagai pengajar
// kelas, atau principal/school_manager dari sekolah pemilik kelas.
func CanManageClassroom(db *gorm.DB, actor *userModel.UserModel, room *model.ClassroomModel) (bool, error) {
	switch actor.UserRole {
	case constants.RoleTeacher, constants.RolePrincipal:
		ok, err := IsTeacherOf(db, room.ClassroomID, actor.UserID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	case constants.RoleStudent:
		return false, nil
	}
	if actor.UserRole == constants.RolePrincipal || actor.UserRole == constants.RoleSchoolManager {
		return actor.InSchool(room.ClassroomSchoolID), nil
	}
	return false, nil
}

// canAddCoTeacher: kebijakan permisif — principal ATAU school_manager dari
// sekolah yang sama. Satu titik ganti kalau kebijakan kembali ke principal-only.
func canAddCoTeacher(actor *userModel.UserModel, room *model.ClassroomModel) bool {
	if actor.UserRole != constants.RolePrincipal && actor.UserRole != constants.RoleSchoolManager {
		return false
	}
	return actor.InSchool(room.ClassroomSchoolID)
}

/* =========================
   Mutasi
========================= */

// CreateClassroom: teacher/principal yang punya sekolah; kode unik digenerate
// sekali; pembuat otomatis terpasang sebagai pengajar. Satu transaksi.
func CreateClassroom(db *gorm.DB, actor *userModel.UserModel, name string, description *string) (*model.ClassroomModel, error) {
	if actor.UserRole != constants.RoleTeacher && actor.UserRole != constants.RolePrincipal {
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}
	if !actor.HasSchool() {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "User school not found.")
	}

	var room *model.ClassroomModel
	err := db.Transaction(func(tx *gorm.DB) error {
		for {
			code, err := generateUniqueJoinCode(tx)
			if err != nil {
				return err
			}
			candidate := model.ClassroomModel{
				ClassroomID:          uuid.New(),
				ClassroomSchoolID:    *actor.UserSchoolID,
				ClassroomName:        name,
				ClassroomDescription: description,
				ClassroomCode:        code,
			}
			if err := insertClassroom(tx, &candidate); err != nil {
				// balapan dengan create lain: kode keburu dipakai → re-roll
				if helper.IsUniqueViolation(err) {
					continue
				}
				return err
			}
			room = &candidate
			break
		}
		return tx.Create(&model.ClassroomTeacherModel{
			ClassroomTeacherID:          uuid.New(),
			ClassroomTeacherClassroomID: room.ClassroomID,
			ClassroomTeacherUserID:      actor.UserID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// insertClassroom mencoba satu insert di dalam savepoint sendiri. Postgres
// menggugurkan seluruh transaksi begitu ada statement gagal (25P02), jadi
// kegagalan 23505 harus diisolasi agar loop re-roll di atas masih bisa lanjut.
func insertClassroom(tx *gorm.DB, room *model.ClassroomModel) error {
	return tx.Transaction(func(attempt *gorm.DB) error {
		return attempt.Create(room).Error
	})
}

// AddCoTeacher menambahkan guru lain ke roster pengajar.
// Guru tanpa sekolah otomatis mengadopsi sekolah kelas; beda sekolah ditolak.
func AddCoTeacher(db *gorm.DB, actor *userModel.UserModel, classroomID uuid.UUID, teacherEmail string) (*userModel.UserModel, error) {
	room, err := GetClassroom(db, classroomID)
	if err != nil {
		return nil, err
	}
	if !canAddCoTeacher(actor, room) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only principals or school managers can add teachers.")
	}

	var teacher userModel.UserModel
	if err := db.Where("user_email = ? AND user_role = ?", strings.ToLower(strings.TrimSpace(teacherEmail)), constants.RoleTeacher).
		First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Email ini tidak terdaftar sebagai teacher.")
		}
		return nil, err
	}

	already, err := IsTeacherOf(db, room.ClassroomID, teacher.UserID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, fiber.NewError(fiber.StatusConflict, "This teacher is already in the classroom.")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if !teacher.HasSchool() {
			teacher.UserSchoolID = &room.ClassroomSchoolID
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", teacher.UserID).
				Update("user_school_id", room.ClassroomSchoolID).Error; err != nil {
				return err
			}
		} else if !teacher.InSchool(room.ClassroomSchoolID) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "This teacher belongs to a different school.")
		}
		return tx.Create(&model.ClassroomTeacherModel{
			ClassroomTeacherID:          uuid.New(),
			ClassroomTeacherClassroomID: room.ClassroomID,
			ClassroomTeacherUserID:      teacher.UserID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// EnrollStudentByEmail mendaftarkan siswa sekolah yang sama ke roster kelas.
func EnrollStudentByEmail(db *gorm.DB, actor *userModel.UserModel, classroomID uuid.UUID, studentEmail string) (*userModel.UserModel, error) {
	room, err := GetClassroom(db, classroomID)
	if err != nil {
		return nil, err
	}
	ok, err := CanManageClassroom(db, actor, room)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only manage students within your own school.")
	}

	var student userModel.UserModel
	if err := db.Where("user_email = ? AND user_role = ? AND user_school_id = ?",
		strings.ToLower(strings.TrimSpace(studentEmail)), constants.RoleStudent, room.ClassroomSchoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				"No student with this email was found in your school, or they are not assigned to a school.")
		}
		return nil, err
	}

	already, err := IsStudentOf(db, room.ClassroomID, student.UserID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, fiber.NewError(fiber.StatusConflict, "This student is already enrolled.")
	}

	if err := db.Create(&model.ClassroomStudentModel{
		ClassroomStudentID:          uuid.New(),
		ClassroomStudentClassroomID: room.ClassroomID,
		ClassroomStudentUserID:      student.UserID,
	}).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "This student is already enrolled.")
		}
		return nil, err
	}
	return &student, nil
}

// RemoveStudent melepas siswa dari roster kelas.
func RemoveStudent(db *gorm.DB, actor *userModel.UserModel, classroomID, studentID uuid.UUID) error {
	room, err := GetClassroom(db, classroomID)
	if err != nil {
		return err
	}
	ok, err := CanManageClassroom(db, actor, room)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "You can only manage students within your own school.")
	}
	return db.Where("classroom_student_classroom_id = ? AND classroom_student_user_id = ?", room.ClassroomID, studentID).
		Delete(&model.ClassroomStudentModel{}).Error
}

// JoinByCode: siswa bergabung sendiri lewat kode 6 karakter.
func JoinByCode(db *gorm.DB, actor *userModel.UserModel, code string) (*model.ClassroomModel, error) {
	if actor.UserRole != constants.RoleStudent {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only students can join classes with a code.")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != model.JoinCodeLength {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The code must be exactly 6 characters long.")
	}

	room, err := FindClassroomByCode(db, code)
	if err != nil {
		return nil, err
	}
	if !actor.InSchool(room.ClassroomSchoolID) {
		return nil, fiber.NewError(fiber.StatusConflict, "You can only join classrooms within your own school.")
	}

	already, err := IsStudentOf(db, room.ClassroomID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, fiber.NewError(fiber.StatusConflict, "You are already enrolled in this class.")
	}

	if err := db.Create(&model.ClassroomStudentModel{
		ClassroomStudentID:          uuid.New(),
		ClassroomStudentClassroomID: room.ClassroomID,
		ClassroomStudentUserID:      actor.UserID,
	}).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "You are already enrolled in this class.")
		}
		return nil, err
	}
	return room, nil
}

/* =========================
   Roster untuk halaman manage
========================= */

func TeachersOf(db *gorm.DB, classroomID uuid.UUID) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	err := db.
		Joins("JOIN classroom_teachers ON classroom_teachers.classroom_teacher_user_id = users.user_id").
		Where("classroom_teachers.classroom_teacher_classroom_id = ?", classroomID).
		Order("users.user_name ASC").
		Find(&users).Error
	return users, err
}

func StudentsOf(db *gorm.DB, classroomID uuid.UUID) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	err := db.
		Joins("JOIN classroom_students ON classroom_students.classroom_student_user_id = users.user_id").
		Where("classroom_students.classroom_student_classroom_id = ?", classroomID).
		Order("users.user_name ASC").
		Find(&users).Error
	return users, err
}
