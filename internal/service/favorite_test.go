package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
)

func TestFavoriteAddTwiceIsBenign(t *testing.T) {
	activities := newMemActivities()
	favorites := newMemFavorites(activities)
	s := NewFavorite(favorites, activities)
	a := seed(activities, constant.StatusApproved, "A", []string{"Art"}, []string{"6-8"}, []string{"2-10"})

	first, err := s.Add(context.Background(), contributor, a.ActivityID)
	require.NoError(t, err)
	assert.Equal(t, types.FavoriteSaved, first.Outcome)
	assert.Equal(t, FavoriteSavedMessage, first.Message)

	second, err := s.Add(context.Background(), contributor, a.ActivityID)
	require.NoError(t, err)
	assert.Equal(t, types.FavoriteAlreadySaved, second.Outcome)
	assert.Equal(t, FavoriteAlreadySavedMessage, second.Message)

	assert.Equal(t, 1, favorites.count())
}

func TestFavoriteAddMissingActivity(t *testing.T) {
	activities := newMemActivities()
	s := NewFavorite(newMemFavorites(activities), activities)

	_, err := s.Add(context.Background(), contributor, 42)
	assert.True(t, errors.Is(err, apierr.ErrNotFound))
}

func TestFavoriteRequiresSession(t *testing.T) {
	activities := newMemActivities()
	s := NewFavorite(newMemFavorites(activities), activities)

	_, err := s.Add(context.Background(), model.Anonymous, 1)
	assert.True(t, errors.Is(err, apierr.ErrUnauthorized))
	_, err = s.List(context.Background(), model.Anonymous)
	assert.True(t, errors.Is(err, apierr.ErrUnauthorized))
}

func TestFavoriteListAndRemove(t *testing.T) {
	activities := newMemActivities()
	s := NewFavorite(newMemFavorites(activities), activities)
	a := seed(activities, constant.StatusApproved, "A", []string{"Art"}, []string{"6-8"}, []string{"2-10"})
	b := seed(activities, constant.StatusApproved, "B", []string{"Art"}, []string{"6-8"}, []string{"2-10"})

	_, err := s.Add(context.Background(), contributor, a.ActivityID)
	require.NoError(t, err)
	_, err = s.Add(context.Background(), contributor, b.ActivityID)
	require.NoError(t, err)
	_, err = s.Add(context.Background(), moderator, a.ActivityID)
	require.NoError(t, err)

	list, err := s.List(context.Background(), contributor)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ActivityID, a.ActivityID}, ids(list))

	require.NoError(t, s.Remove(context.Background(), contributor, b.ActivityID))
	require.NoError(t, s.Remove(context.Background(), contributor, b.ActivityID))

	list, err = s.List(context.Background(), contributor)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ActivityID}, ids(list))

	empty, err := s.List(context.Background(), admin)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFavoritePendingActivityIsHidden(t *testing.T) {
	activities := newMemActivities()
	favorites := newMemFavorites(activities)
	s := NewFavorite(favorites, activities)
	draft := seed(activities, constant.StatusPending, "Secret Draft", []string{"Art"}, []string{"6-8"}, []string{"2-10"})

	_, err := s.Add(context.Background(), contributor, draft.ActivityID)
	assert.True(t, errors.Is(err, apierr.ErrNotFound))
	assert.Equal(t, 0, favorites.count())

	list, err := s.List(context.Background(), contributor)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFavoriteListDropsActivitiesThatLeftApproval(t *testing.T) {
	activities := newMemActivities()
	s := NewFavorite(newMemFavorites(activities), activities)
	a := seed(activities, constant.StatusApproved, "A", []string{"Art"}, []string{"6-8"}, []string{"2-10"})

	_, err := s.Add(context.Background(), contributor, a.ActivityID)
	require.NoError(t, err)
	require.NoError(t, activities.UpdateActivityStatus(context.Background(), a.ActivityID, constant.StatusPending))

	list, err := s.List(context.Background(), contributor)
	require.NoError(t, err)
	assert.Empty(t, list)
}
