package middleware

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
)

// RequireRoles menolak request kalau role pada token tidak termasuk daftar.
// Guard kasar di level route; aturan kepemilikan tetap dicek di service.
func RequireRoles(roles ...constants.Role) fiber.Handler {
	allowed := make(map[constants.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromToken(c)
		if err != nil {
			return err
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Unauthorized action.")
		}
		return c.Next()
	}
}
