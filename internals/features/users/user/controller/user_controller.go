// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "schoolku_backend/internals/features/users/user/dto"
	userService "schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 👤 GET /api/auth/me — profil user yang sedang login.
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	user, err := userService.CurrentUser(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Profil user", userDTO.FromModel(user))
}
