// Package sessionid mints session tokens and moves them in and out of HTTP requests.
package sessionid

import (
	"strings"
	"time"

	"github.com/dchest/uniuri"
	"github.com/gofiber/fiber/v2"

	"eag.dev/backend/internal/constant"
)

func New() string {
	return uniuri.NewLen(constant.SessionTokenLength)
}

// Extract reads the token from the `Authorization: Bearer` header, falling back to the session cookie.
func Extract(ctx *fiber.Ctx) string {
	authorization := strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(authorization, constant.SessionAuthorizationRealm+" ") {
		if token := strings.TrimSpace(strings.TrimPrefix(authorization, constant.SessionAuthorizationRealm)); token != "" {
			return token
		}
	}

	return ctx.Cookies(constant.SessionCookieKey)
}

func Inject(ctx *fiber.Ctx, token string, ttl time.Duration) {
	ctx.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieKey,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   ctx.Protocol() == "https",
	})
}

func Clear(ctx *fiber.Ctx) {
	ctx.ClearCookie(constant.SessionCookieKey)
}
