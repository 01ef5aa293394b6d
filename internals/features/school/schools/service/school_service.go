// file: internals/features/school/schools/service/school_service.go
package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	model "schoolku_backend/internals/features/school/schools/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Lookups
========================= */

func GetSchool(db *gorm.DB, id uuid.UUID) (*model.SchoolModel, error) {
	var school model.SchoolModel
	if err := db.Where("school_id = ?", id).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return nil, err
	}
	return &school, nil
}

func GetSchoolOfPrincipal(db *gorm.DB, principalID uuid.UUID) (*model.SchoolModel, error) {
	var school model.SchoolModel
	if err := db.Where("school_principal_id = ?", principalID).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Anda belum memiliki sekolah.")
		}
		return nil, err
	}
	return &school, nil
}

// ListMembers: seluruh user dengan user_school_id = sekolah, urut role desc lalu nama.
func ListMembers(db *gorm.DB, schoolID uuid.UUID, p helper.Paging) ([]userModel.UserModel, int64, error) {
	q := db.Model(&userModel.UserModel{}).Where("user_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []userModel.UserModel
	err := q.Order("user_role DESC").Order("user_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&members).Error
	return members, total, err
}

/* =========================
   Otorisasi
========================= */

// CanManageMembership: principal pemilik sekolah, atau school_manager yang
// sudah tergabung di sekolah itu.
func CanManageMembership(actor *userModel.UserModel, school *model.SchoolModel) bool {
	switch actor.UserRole {
	case constants.RolePrincipal:
		return school.SchoolPrincipalID == actor.UserID
	case constants.RoleSchoolManager:
		return actor.InSchool(school.SchoolID)
	}
	return false
}

/* =========================
   Mutasi
========================= */

// UpsertSchoolForPrincipal: idempotent, keyed by principal_id (natural key
// dengan unique index). Sekalian set school_id milik principal.
func UpsertSchoolForPrincipal(db *gorm.DB, actor *userModel.UserModel, name string) (*model.SchoolModel, error) {
	if actor.UserRole != constants.RolePrincipal {
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}

	var school model.SchoolModel
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("school_principal_id = ?", actor.UserID).First(&school).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			school = model.SchoolModel{
				SchoolID:          uuid.New(),
				SchoolName:        name,
				SchoolPrincipalID: actor.UserID,
			}
			if err := tx.Create(&school).Error; err != nil {
				if helper.IsUniqueViolation(err) {
					// balapan dengan request kembar: ambil yang menang
					return tx.Where("school_principal_id = ?", actor.UserID).First(&school).Error
				}
				return err
			}
		case err != nil:
			return err
		default:
			if school.SchoolName != name {
				school.SchoolName = name
				if err := tx.Model(&model.SchoolModel{}).
					Where("school_id = ?", school.SchoolID).
					Update("school_name", name).Error; err != nil {
					return err
				}
			}
		}

		if !actor.InSchool(school.SchoolID) {
			actor.UserSchoolID = &school.SchoolID
			return tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", actor.UserID).
				Update("user_school_id", school.SchoolID).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &school, nil
}

// RenameSchool mengganti nama sekolah milik principal.
func RenameSchool(db *gorm.DB, actor *userModel.UserModel, name string) (*model.SchoolModel, error) {
	if actor.UserRole != constants.RolePrincipal {
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}
	school, err := GetSchoolOfPrincipal(db, actor.UserID)
	if err != nil {
		return nil, err
	}
	school.SchoolName = name
	if err := db.Model(&model.SchoolModel{}).
		Where("school_id = ?", school.SchoolID).
		Update("school_name", name).Error; err != nil {
		return nil, err
	}
	return school, nil
}

// DeleteSchool menghapus sekolah milik principal. Seluruh anggota di-null-kan
// school_id-nya lalu barisnya dihapus — satu transaksi, tidak boleh separuh.
func DeleteSchool(db *gorm.DB, actor *userModel.UserModel) error {
	if actor.UserRole != constants.RolePrincipal {
		return fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}
	school, err := GetSchoolOfPrincipal(db, actor.UserID)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_school_id = ?", school.SchoolID).
			Update("user_school_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("school_id = ?", school.SchoolID).
			Delete(&model.SchoolModel{}).Error
	})
}

// attachByEmail: aturan anti-poaching — target harus ber-role sesuai dan belum
// punya sekolah.
func attachByEmail(db *gorm.DB, actor *userModel.UserModel, role constants.Role, email string) (*userModel.UserModel, error) {
	school, err := GetSchoolOfPrincipal(db, actor.UserID)
	if err != nil {
		// school_manager tidak memiliki sekolah; pakai keanggotaannya
		if actor.UserRole == constants.RoleSchoolManager && actor.HasSchool() {
			school, err = GetSchool(db, *actor.UserSchoolID)
		}
		if err != nil {
			return nil, err
		}
	}
	if !CanManageMembership(actor, school) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}

	var target userModel.UserModel
	err = db.Where("user_email = ? AND user_role = ? AND user_school_id IS NULL",
		strings.ToLower(strings.TrimSpace(email)), role).
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				"Email ini tidak terdaftar sebagai "+role.String()+" atau sudah terdaftar di sekolah lain.")
		}
		return nil, err
	}

	target.UserSchoolID = &school.SchoolID
	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", target.UserID).
		Update("user_school_id", school.SchoolID).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

// AddTeacherByEmail menggabungkan guru bebas-sekolah ke sekolah actor.
func AddTeacherByEmail(db *gorm.DB, actor *userModel.UserModel, email string) (*userModel.UserModel, error) {
	return attachByEmail(db, actor, constants.RoleTeacher, email)
}

// AddStudentByEmail menggabungkan siswa bebas-sekolah ke sekolah actor.
func AddStudentByEmail(db *gorm.DB, actor *userModel.UserModel, email string) (*userModel.UserModel, error) {
	return attachByEmail(db, actor, constants.RoleStudent, email)
}

// ToggleManager flip teacher↔school_manager.
// Hanya principal sekolah yang sama; tidak boleh mengubah diri sendiri.
func ToggleManager(db *gorm.DB, actor *userModel.UserModel, targetID uuid.UUID) (*userModel.UserModel, error) {
	if actor.UserRole != constants.RolePrincipal {
		return nil, fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
	}
	if actor.UserID == targetID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Principal tidak dapat mengubah role dirinya sendiri.")
	}
	school, err := GetSchoolOfPrincipal(db, actor.UserID)
	if err != nil {
		return nil, err
	}

	var target userModel.UserModel
	if err := db.Where("user_id = ?", targetID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, err
	}
	if !target.InSchool(school.SchoolID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "User bukan anggota sekolah Anda.")
	}

	switch target.UserRole {
	case constants.RoleTeacher:
		target.UserRole = constants.RoleSchoolManager
	case constants.RoleSchoolManager:
		target.UserRole = constants.RoleTeacher
	default:
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Hanya teacher atau school_manager yang bisa di-toggle.")
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", target.UserID).
		Update("user_role", target.UserRole).Error; err != nil {
		return nil, err
	}
	return &target, nil
}
