package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// Chained mounts handlers on router in order and returns router for further registration.
// Works on the app itself as well as on a route group.
func Chained(router fiber.Router, handlers ...fiber.Handler) fiber.Router {
	for _, handler := range handlers {
		router.Use(handler)
	}
	return router
}
