package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/util/catalogstats"
)

func newModeration(pageSize int) (*Moderation, *memActivities) {
	store := newMemActivities()
	return &Moderation{ActivityStore: store, PageSize: pageSize, GapThreshold: constant.DefaultGapThreshold}, store
}

func TestOverviewStreamsEveryPage(t *testing.T) {
	m, store := newModeration(2)
	seed(store, constant.StatusApproved, "A", []string{"Art"}, []string{"6-8"}, []string{"2-10"})
	seed(store, constant.StatusApproved, "B", []string{"Art", "Icebreaker"}, []string{"any"}, []string{"11-24"})
	seed(store, constant.StatusApproved, "C", []string{"Active Sport"}, []string{"9-12"}, []string{"25+"})
	seed(store, constant.StatusPending, "D", []string{"Art"}, []string{"4-5"}, []string{"2-10"})
	seed(store, constant.StatusPending, "E", []string{"Learning Lab"}, []string{"13+"}, []string{"2-10"})

	overview, err := m.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, overview.Stats.Total)
	assert.Equal(t, 2, overview.Stats.Pending)
	assert.Len(t, overview.Pending, 2)
	assert.Equal(t, "Art", overview.Stats.TopCategory)
	// one (activity, category) pair per category on every approved activity
	assert.Equal(t, 4, overview.Stats.Categories.Sum())
}

func TestOverviewEmptyCatalog(t *testing.T) {
	m, _ := newModeration(10)

	overview, err := m.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.Stats.Total)
	assert.Equal(t, constant.TopCategoryNone, overview.Stats.TopCategory)
	assert.Equal(t, []string{catalogstats.EmptyMessage}, overview.Stats.Report)
	assert.Empty(t, overview.Pending)
}

func TestListPagesWithCursor(t *testing.T) {
	m, store := newModeration(10)
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		seed(store, constant.StatusPending, title, []string{"Art"}, []string{"6-8"}, []string{"2-10"})
	}

	first, err := m.List(context.Background(), &types.ActivityPageRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first.Activities, 2)
	assert.Equal(t, "E", first.Activities[0].Title)
	require.NotEmpty(t, first.NextCursor)

	second, err := m.List(context.Background(), &types.ActivityPageRequest{Limit: 2, Cursor: first.NextCursor})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, []string{second.Activities[0].Title, second.Activities[1].Title})

	last, err := m.List(context.Background(), &types.ActivityPageRequest{Limit: 2, Cursor: second.NextCursor})
	require.NoError(t, err)
	require.Len(t, last.Activities, 1)
	assert.Empty(t, last.NextCursor)
}

func TestListRejectsBadCursor(t *testing.T) {
	m, _ := newModeration(10)
	_, err := m.List(context.Background(), &types.ActivityPageRequest{Cursor: "%%%"})
	assert.True(t, errors.Is(err, apierr.ErrInvalidReq))
}

func TestApproveMovesActivityOutOfPending(t *testing.T) {
	m, store := newModeration(10)
	a := seed(store, constant.StatusPending, "A", []string{"Art"}, []string{"6-8"}, []string{"2-10"})

	overview, err := m.Approve(context.Background(), moderator, a.ActivityID)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.Stats.Total)
	assert.Empty(t, overview.Pending)

	_, err = m.Approve(context.Background(), contributor, a.ActivityID)
	assert.True(t, errors.Is(err, apierr.ErrForbidden))

	_, err = m.Approve(context.Background(), moderator, 404)
	assert.True(t, errors.Is(err, apierr.ErrNotFound))
}

func TestEditPatchesTextOnly(t *testing.T) {
	m, store := newModeration(10)
	a := seed(store, constant.StatusPending, "Old", []string{"Art"}, []string{"6-8"}, []string{"2-10"})

	_, err := m.Edit(context.Background(), moderator, a.ActivityID, &types.ActivityPatch{
		Title:        null.StringFrom("New"),
		MakeItHarder: null.StringFrom("Blindfold"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", a.Title)
	assert.Equal(t, "Old description", a.Description)
	assert.Equal(t, "Blindfold", a.MakeItHarder.String)
	assert.Equal(t, constant.StatusPending, a.Status)

	_, err = m.Edit(context.Background(), moderator, a.ActivityID, &types.ActivityPatch{})
	assert.True(t, errors.Is(err, apierr.ErrInvalidReq))
}

func TestEditRejectsBlankText(t *testing.T) {
	m, store := newModeration(10)
	a := seed(store, constant.StatusPending, "Old", []string{"Art"}, []string{"6-8"}, []string{"2-10"})

	for _, patch := range []*types.ActivityPatch{
		{Title: null.StringFrom("")},
		{Description: null.StringFrom("   ")},
	} {
		_, err := m.Edit(context.Background(), moderator, a.ActivityID, patch)
		assert.True(t, errors.Is(err, apierr.ErrInvalidReq))
	}
	assert.Equal(t, "Old", a.Title)
	assert.Equal(t, "Old description", a.Description)

	// an empty variation clears it
	_, err := m.Edit(context.Background(), moderator, a.ActivityID, &types.ActivityPatch{MakeItEasier: null.StringFrom("")})
	assert.NoError(t, err)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	m, store := newModeration(10)
	a := seed(store, constant.StatusApproved, "A", []string{"Art"}, []string{"6-8"}, []string{"2-10"})

	_, err := m.Delete(context.Background(), moderator, a.ActivityID)
	assert.True(t, errors.Is(err, apierr.ErrForbidden))

	overview, err := m.Delete(context.Background(), admin, a.ActivityID)
	require.NoError(t, err)
	assert.Zero(t, overview.Stats.Total)
	_, err = store.GetActivityByID(context.Background(), a.ActivityID)
	assert.True(t, errors.Is(err, apierr.ErrNotFound))
}
