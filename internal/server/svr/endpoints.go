package svr

import (
	"github.com/gofiber/fiber/v2"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/pkg/middlewares"
)

// Meta serves probes and build information under /api/_.
type Meta struct {
	fiber.Router
}

// V1 is the public API. Every request on it carries a resolved identity, anonymous or not.
type V1 struct {
	fiber.Router
}

// Admin is the moderation console, open to moderators and admins only.
type Admin struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, resolver middlewares.IdentityResolver) (*Meta, *V1, *Admin) {
	meta := app.Group("/api/_")
	v1 := middlewares.Chained(app.Group("/api/v1"), middlewares.Authenticate(resolver))
	admin := middlewares.Chained(v1.Group("/admin"), middlewares.RequireRole(constant.RoleModerator))

	return &Meta{Router: meta}, &V1{Router: v1}, &Admin{Router: admin}
}
