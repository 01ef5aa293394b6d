// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

// Umur token akses. Refresh token sengaja tidak dipakai di sini,
// klien cukup login ulang.
const AccessTokenTTL = 24 * time.Hour

// ErrEmailTaken dipetakan controller ke field error user_email.
var ErrEmailTaken = fiber.NewError(fiber.StatusUnprocessableEntity, "Email sudah terdaftar.")

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     constants.Role
}

// Register membuat akun baru. school_manager tidak boleh mendaftar
// langsung — role itu hanya didapat lewat promosi oleh principal.
func Register(db *gorm.DB, in RegisterInput) (*userModel.UserModel, error) {
	if !in.Role.Valid() || in.Role == constants.RoleSchoolManager {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Role harus principal, teacher, atau student.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserID:       uuid.New(),
		UserName:     strings.TrimSpace(in.Name),
		UserEmail:    strings.ToLower(strings.TrimSpace(in.Email)),
		UserPassword: string(hash),
		UserRole:     in.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login memverifikasi kredensial dan mengembalikan user + token akses.
// Pesan error sengaja sama untuk email tak dikenal dan password salah.
func Login(db *gorm.DB, email, password string) (*userModel.UserModel, string, error) {
	var user userModel.UserModel
	err := db.Where("user_email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah.")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)) != nil {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah.")
	}

	token, err := IssueAccessToken(&user, time.Now())
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// IssueAccessToken menandatangani JWT HS256 dengan klaim yang dibaca
// middleware auth: id, user_name, role, school_id.
func IssueAccessToken(user *userModel.UserModel, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	if user.UserSchoolID != nil {
		claims["school_id"] = user.UserSchoolID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
