package middlewares

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/pkg/apierr"
)

type staticResolver map[string]*model.Identity

func (r staticResolver) Current(_ context.Context, token string) (*model.Identity, error) {
	if identity, ok := r[token]; ok {
		return identity, nil
	}
	return model.Anonymous, nil
}

func newAuthApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*apierr.APIError); ok {
				return c.Status(e.StatusCode).SendString(e.ErrorCode)
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	resolver := staticResolver{
		"contributor": {AccountID: 1, Role: constant.RoleContributor},
		"moderator":   {AccountID: 2, Role: constant.RoleModerator},
		"admin":       {AccountID: 3, Role: constant.RoleAdmin},
	}
	app.Use(Authenticate(resolver))
	app.Get("/public", func(c *fiber.Ctx) error {
		return c.SendString(IdentityFromCtx(c).Role)
	})
	app.Get("/moderate", RequireRole(constant.RoleModerator), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/activities/:activityId", ValidateActivityIDAsParam, func(c *fiber.Ctx) error {
		return c.JSON(ActivityIDFromCtx(c))
	})
	return app
}

func TestRequireRole(t *testing.T) {
	app := newAuthApp()

	tests := []struct {
		token string
		want  int
	}{
		{"", fiber.StatusUnauthorized},
		{"expired", fiber.StatusUnauthorized},
		{"contributor", fiber.StatusForbidden},
		{"moderator", fiber.StatusNoContent},
		{"admin", fiber.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/moderate", nil)
			if tt.token != "" {
				req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tt.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAnonymousPassesPublicRoutes(t *testing.T) {
	resp, err := newAuthApp().Test(httptest.NewRequest("GET", "/public", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestValidateActivityIDAsParam(t *testing.T) {
	app := newAuthApp()
	for path, want := range map[string]int{
		"/activities/12":  fiber.StatusOK,
		"/activities/0":   fiber.StatusBadRequest,
		"/activities/abc": fiber.StatusBadRequest,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
