// file: internals/helpers/get_user_uuid.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID reads the user id the auth middleware stored in Locals.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}
	return id, nil
}
