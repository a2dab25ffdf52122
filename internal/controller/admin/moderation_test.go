package admin

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/cursor"
	"eag.dev/backend/internal/server/httpserver"
	"eag.dev/backend/internal/server/svr"
	"eag.dev/backend/internal/service"
)

type stubResolver map[string]*model.Identity

func (r stubResolver) Current(_ context.Context, token string) (*model.Identity, error) {
	if identity, ok := r[token]; ok {
		return identity, nil
	}
	return model.Anonymous, nil
}

type stubActivities struct {
	service.ActivityStore

	rows []*model.Activity
}

func (s *stubActivities) find(id int64) (*model.Activity, int) {
	a, i, ok := lo.FindIndexOf(s.rows, func(a *model.Activity) bool { return a.ActivityID == id })
	if !ok {
		return nil, -1
	}
	return a, i
}

func (s *stubActivities) ListActivitiesPage(_ context.Context, status string, after *cursor.Cursor, limit int, _ string) ([]*model.Activity, error) {
	if after != nil {
		return nil, nil
	}
	rows := lo.Filter(s.rows, func(a *model.Activity, _ int) bool { return status == "" || a.Status == status })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *stubActivities) UpdateActivityStatus(_ context.Context, id int64, status string) error {
	a, _ := s.find(id)
	if a == nil {
		return apierr.ErrNotFound
	}
	a.Status = status
	return nil
}

func (s *stubActivities) PatchActivity(_ context.Context, id int64, patch *types.ActivityPatch) error {
	a, _ := s.find(id)
	if a == nil {
		return apierr.ErrNotFound
	}
	if patch.Title.Valid {
		a.Title = patch.Title.String
	}
	return nil
}

func (s *stubActivities) DeleteActivity(_ context.Context, id int64) error {
	_, i := s.find(id)
	if i < 0 {
		return apierr.ErrNotFound
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

func newApp() (*fiber.App, *stubActivities) {
	app := fiber.New(fiber.Config{ErrorHandler: httpserver.ErrorHandler})
	_, _, admin := svr.CreateEndpointGroups(app, stubResolver{
		"contributor": {AccountID: 1, Role: constant.RoleContributor},
		"moderator":   {AccountID: 2, Role: constant.RoleModerator},
		"admin":       {AccountID: 3, Role: constant.RoleAdmin},
	})
	store := &stubActivities{rows: []*model.Activity{
		{ActivityID: 1, Title: "Freeze Tag", Category: []string{"Active Sport"}, AgeGroup: []string{"6-8"}, GroupSize: []string{"11-24"}, Materials: constant.MaterialsNoPrep, Status: constant.StatusApproved},
		{ActivityID: 2, Title: "Collage", Category: []string{"Art"}, AgeGroup: []string{"any"}, GroupSize: []string{"2-10"}, Materials: constant.MaterialsLowPrep, Status: constant.StatusPending},
	}}
	RegisterModeration(admin, Moderation{ModerationService: &service.Moderation{
		ActivityStore: store,
		PageSize:      10,
		GapThreshold:  constant.DefaultGapThreshold,
	}})
	return app, store
}

func status(t *testing.T, app *fiber.App, method, target, token, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestModerationRoleMatrix(t *testing.T) {
	tests := []struct {
		method string
		target string
		token  string
		want   int
	}{
		{fiber.MethodGet, "/api/v1/admin/overview", "", fiber.StatusUnauthorized},
		{fiber.MethodGet, "/api/v1/admin/overview", "contributor", fiber.StatusForbidden},
		{fiber.MethodGet, "/api/v1/admin/overview", "moderator", fiber.StatusOK},
		{fiber.MethodGet, "/api/v1/admin/activities?status=pending", "moderator", fiber.StatusOK},
		{fiber.MethodGet, "/api/v1/admin/activities?status=archived", "moderator", fiber.StatusBadRequest},
		{fiber.MethodPost, "/api/v1/admin/activities/2/approve", "contributor", fiber.StatusForbidden},
		{fiber.MethodPost, "/api/v1/admin/activities/2/approve", "moderator", fiber.StatusOK},
		{fiber.MethodPost, "/api/v1/admin/activities/99/approve", "moderator", fiber.StatusNotFound},
		{fiber.MethodDelete, "/api/v1/admin/activities/1", "moderator", fiber.StatusForbidden},
		{fiber.MethodDelete, "/api/v1/admin/activities/1", "admin", fiber.StatusOK},
		{fiber.MethodDelete, "/api/v1/admin/cache/facets", "moderator", fiber.StatusForbidden},
		{fiber.MethodDelete, "/api/v1/admin/cache/nonexistent", "admin", fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target+" as "+tt.token, func(t *testing.T) {
			app, _ := newApp()
			assert.Equal(t, tt.want, status(t, app, tt.method, tt.target, tt.token, ""))
		})
	}
}

func TestEditActivity(t *testing.T) {
	app, store := newApp()

	assert.Equal(t, fiber.StatusOK, status(t, app, fiber.MethodPatch, "/api/v1/admin/activities/2", "moderator", `{"title":"Magazine Collage"}`))
	assert.Equal(t, "Magazine Collage", store.rows[1].Title)

	assert.Equal(t, fiber.StatusBadRequest, status(t, app, fiber.MethodPatch, "/api/v1/admin/activities/2", "moderator", `{}`))
}

func TestApproveReturnsFreshOverview(t *testing.T) {
	app, store := newApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/admin/activities/2/approve", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer moderator")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var overview types.ModerationOverview
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&overview))
	assert.Empty(t, overview.Pending)
	assert.Equal(t, 2, overview.Stats.Total)
	assert.Equal(t, constant.StatusApproved, store.rows[1].Status)
}
