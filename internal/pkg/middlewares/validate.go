package middlewares

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"eag.dev/backend/internal/pkg/apierr"
)

const localsActivityIDKey = "activityId"

// ValidateActivityIDAsParam rejects requests whose :activityId is not a positive integer.
func ValidateActivityIDAsParam(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("activityId"), 10, 64)
	if err != nil || id <= 0 {
		return apierr.ErrInvalidReq.Msg("invalid or missing activityId")
	}
	c.Locals(localsActivityIDKey, id)
	return c.Next()
}

// ActivityIDFromCtx returns the id stored by ValidateActivityIDAsParam.
func ActivityIDFromCtx(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localsActivityIDKey).(int64)
	return id
}
