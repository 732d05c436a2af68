package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetTeacherIDFromToken returns the authenticated teacher's id as set by the
// auth middleware. Every tutoring record is scoped to this id.
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}
