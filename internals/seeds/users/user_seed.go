// file: internals/seeds/users/user_seed.go
package users

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// Akun demo untuk development. Password semuanya "kucing123".
var demoUsers = []struct {
	Name  string
	Email string
	Role  constants.Role
}{
	{"Kepala Sekolah", "kepsek@gmail.com", constants.RolePrincipal},
	{"Guru", "guru@gmail.com", constants.RoleTeacher},
	{"Murid", "murid@gmail.com", constants.RoleStudent},
}

// Seed membuat akun demo kalau belum ada (idempotent by email).
func Seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("kucing123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, u := range demoUsers {
		var existing userModel.UserModel
		err := db.Where("user_email = ?", u.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user := userModel.UserModel{
			UserID:       uuid.New(),
			UserName:     u.Name,
			UserEmail:    u.Email,
			UserPassword: string(hash),
			UserRole:     u.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("🌱 Seed user %s (%s)", u.Email, u.Role)
	}
	return nil
}
