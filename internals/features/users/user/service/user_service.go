// file: internals/features/users/user/service/user_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

func GetUser(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, err
	}
	return &user, nil
}

// CurrentUser memuat actor dari klaim token di c.Locals.
// Selalu baca dari DB, bukan dari klaim, supaya role/school hasil
// promosi atau join terbaru langsung terpakai.
func CurrentUser(c *fiber.Ctx, db *gorm.DB) (*userModel.UserModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	user, err := GetUser(db, userID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusNotFound {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return nil, err
	}
	return user, nil
}
