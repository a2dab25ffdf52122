package meta

import (
	"github.com/gofiber/fiber/v2"

	"eag.dev/backend/internal/constant"
)

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the " + constant.SiteName + " API v1",
			"facets":  "/api/v1/facets",
		})
	})
}
