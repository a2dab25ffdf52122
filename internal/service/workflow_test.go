package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model/types"
)

// A contributor's submission stays out of the catalog until a moderator approves it.
func TestSubmitApproveSearch(t *testing.T) {
	ctx := context.Background()
	store := newMemActivities()
	catalog := NewCatalog(store, NewPopularity(&fakePublisher{}, store))
	submission := NewSubmission(store)
	moderation := &Moderation{ActivityStore: store, PageSize: 50, GapThreshold: constant.DefaultGapThreshold}

	res, err := submission.Submit(ctx, contributor, &types.ActivitySubmission{
		Title:       "Paper Plate Masks",
		Description: "Decorate a paper plate.",
		AgeGroup:    []string{"6-8"},
		Category:    []string{"Art"},
		GroupSize:   []string{"2-10"},
	})
	require.NoError(t, err)
	require.Equal(t, constant.StatusPending, res.Status)

	art := &types.CatalogQuery{Categories: []string{"Art"}}
	found, err := catalog.Search(ctx, art)
	require.NoError(t, err)
	assert.Empty(t, found)

	overview, err := moderation.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Pending, 1)
	assert.Equal(t, res.Activity.ActivityID, overview.Pending[0].ActivityID)

	overview, err = moderation.Approve(ctx, moderator, res.Activity.ActivityID)
	require.NoError(t, err)
	assert.Empty(t, overview.Pending)
	assert.Equal(t, 1, overview.Stats.Total)

	found, err = catalog.Search(ctx, art)
	require.NoError(t, err)
	assert.Equal(t, []int64{res.Activity.ActivityID}, ids(found))

	found, err = catalog.Search(ctx, &types.CatalogQuery{Categories: []string{"Icebreaker"}})
	require.NoError(t, err)
	assert.Empty(t, found)
}
