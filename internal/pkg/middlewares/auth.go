package middlewares

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/flog"
	"eag.dev/backend/internal/pkg/sessionid"
)

type IdentityResolver interface {
	Current(ctx context.Context, token string) (*model.Identity, error)
}

// Authenticate resolves the session token of every request into an identity. Requests without a
// valid session continue as anonymous; only RequireRole turns them away.
func Authenticate(resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := model.Anonymous
		if token := sessionid.Extract(c); token != "" {
			resolved, err := resolver.Current(c.UserContext(), token)
			if err != nil {
				return err
			}
			identity = resolved
		}
		c.Locals(constant.LocalsIdentityKey, identity)
		if !identity.IsAnonymous() {
			flog.DebugFrom(c).
				Str("evt.name", "http.auth.resolved").
				Int64("accountId", identity.AccountID).
				Str("role", identity.Role).
				Msg("session resolved")
		}
		return c.Next()
	}
}

// RequireRole rejects anonymous callers with 401 and under-privileged ones with 403.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromCtx(c)
		if identity.IsAnonymous() {
			return apierr.ErrUnauthorized
		}
		if !identity.HasRole(role) {
			return apierr.ErrForbidden.Msg("forbidden: this operation requires the %s role", role)
		}
		return c.Next()
	}
}

// IdentityFromCtx returns the identity stored by Authenticate, or model.Anonymous.
func IdentityFromCtx(c *fiber.Ctx) *model.Identity {
	if identity, ok := c.Locals(constant.LocalsIdentityKey).(*model.Identity); ok && identity != nil {
		return identity
	}
	return model.Anonymous
}
