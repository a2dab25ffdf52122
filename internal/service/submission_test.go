package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
)

func draft() *types.ActivitySubmission {
	return &types.ActivitySubmission{
		Title:       "Color Scavenger Hunt",
		Description: "Find something of every color.",
		AgeGroup:    []string{"6-8"},
		Category:    []string{"Art"},
		GroupSize:   []string{"2-10"},
		Tags:        []string{" Teamwork ", "teamwork", ""},
	}
}

func TestSubmitStatusFollowsRole(t *testing.T) {
	tests := []struct {
		identity *model.Identity
		status   string
		notice   string
	}{
		{contributor, constant.StatusPending, NoticeInReview},
		{moderator, constant.StatusPending, NoticeInReview},
		{admin, constant.StatusApproved, NoticeLive},
	}
	for _, tt := range tests {
		t.Run(tt.identity.Role, func(t *testing.T) {
			store := newMemActivities()
			s := NewSubmission(store)

			res, err := s.Submit(context.Background(), tt.identity, draft())
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.notice, res.Notice)

			stored, err := store.GetActivityByID(context.Background(), res.Activity.ActivityID)
			require.NoError(t, err)
			assert.Equal(t, tt.status, stored.Status)
			assert.Equal(t, tt.identity.AccountID, stored.SubmittedBy.Int64)
		})
	}
}

func TestSubmitNormalizesDraft(t *testing.T) {
	store := newMemActivities()
	d := draft()
	d.MakeItEasier = null.StringFrom("Use fewer colors")

	res, err := NewSubmission(store).Submit(context.Background(), contributor, d)
	require.NoError(t, err)
	assert.Equal(t, []string{"teamwork"}, res.Activity.Tags)
	assert.Equal(t, constant.DefaultMaterials, res.Activity.Materials)
	assert.Equal(t, "Use fewer colors", res.Activity.MakeItEasier.String)
	assert.False(t, res.Activity.MakeItHarder.Valid)
}

func TestSubmitRequiresFacets(t *testing.T) {
	for _, strip := range []func(d *types.ActivitySubmission){
		func(d *types.ActivitySubmission) { d.AgeGroup = nil },
		func(d *types.ActivitySubmission) { d.Category = []string{} },
		func(d *types.ActivitySubmission) { d.GroupSize = []string{"100+"} },
	} {
		store := newMemActivities()
		d := draft()
		strip(d)

		_, err := NewSubmission(store).Submit(context.Background(), contributor, d)
		require.Error(t, err)
		var pe *apierr.APIError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, apierr.CodeInvalidRequest, pe.ErrorCode)
		assert.Equal(t, FacetSelectionMessage, pe.Message)
		assert.Empty(t, store.rows, "nothing is written on a validation failure")
	}
}

func TestSubmitRejectsMissingTitle(t *testing.T) {
	store := newMemActivities()
	d := draft()
	d.Title = ""

	_, err := NewSubmission(store).Submit(context.Background(), contributor, d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierr.ErrInvalidReq))
	var pe *apierr.APIError
	require.True(t, errors.As(err, &pe))
	assert.NotEqual(t, FacetSelectionMessage, pe.Message)
	assert.Empty(t, store.rows)
}

func TestSubmitRequiresSession(t *testing.T) {
	_, err := NewSubmission(newMemActivities()).Submit(context.Background(), model.Anonymous, draft())
	assert.True(t, errors.Is(err, apierr.ErrUnauthorized))
}
