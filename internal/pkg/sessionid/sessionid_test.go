package sessionid

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eag.dev/backend/internal/constant"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.Len(t, a, constant.SessionTokenLength)
	assert.NotEqual(t, a, b)
}

func TestExtract(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Extract(c))
	})

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"bearer", "Bearer abc", "", "abc"},
		{"cookie fallback", "", "fromcookie", "fromcookie"},
		{"bearer wins over cookie", "Bearer abc", "fromcookie", "abc"},
		{"other realm ignored", "Basic abc", "", ""},
		{"empty bearer falls back", "Bearer ", "fromcookie", "fromcookie"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.Header.Set(fiber.HeaderCookie, constant.SessionCookieKey+"="+tt.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.want, string(body))
		})
	}
}
