// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	authService "schoolku_backend/internals/features/users/auth/service"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// 📝 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authService.Register(ctrl.DB, authService.RegisterInput{
		Name:     req.UserName,
		Email:    req.UserEmail,
		Password: req.UserPassword,
		Role:     constants.Role(req.UserRole),
	})
	if err != nil {
		if errors.Is(err, authService.ErrEmailTaken) {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal",
				fiber.Map{"user_email": "sudah terdaftar"})
		}
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", userDTO.FromModel(user))
}

// 🔑 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, token, err := authService.Login(ctrl.DB, req.UserEmail, req.UserPassword)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Login berhasil", authDTO.NewLoginResponse(token, user))
}
