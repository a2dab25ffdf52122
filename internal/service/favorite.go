package service

import (
	"context"
	"errors"

	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
)

const (
	FavoriteSavedMessage        = "saved to library"
	FavoriteAlreadySavedMessage = "already in library"
)

type Favorite struct {
	FavoriteStore FavoriteStore
	ActivityStore ActivityStore
}

func NewFavorite(favoriteStore FavoriteStore, activityStore ActivityStore) *Favorite {
	return &Favorite{
		FavoriteStore: favoriteStore,
		ActivityStore: activityStore,
	}
}

// Add saves the activity to the caller's library. Saving it twice is not an error.
// Activities still in review cannot be saved and are reported as not found.
func (s *Favorite) Add(ctx context.Context, identity *model.Identity, activityId int64) (*types.FavoriteResult, error) {
	if identity.IsAnonymous() {
		return nil, apierr.ErrUnauthorized.Msg("sign in to save activities")
	}

	if _, err := s.ActivityStore.GetApprovedActivityByID(ctx, activityId); err != nil {
		if errors.Is(err, apierr.ErrNotFound) {
			return nil, apierr.ErrNotFound.Msg("activity %d not found", activityId)
		}
		return nil, err
	}

	err := s.FavoriteStore.CreateFavorite(ctx, &model.Favorite{
		AccountID:  identity.AccountID,
		ActivityID: activityId,
	})
	switch {
	case err == nil:
		return &types.FavoriteResult{ActivityID: activityId, Outcome: types.FavoriteSaved, Message: FavoriteSavedMessage}, nil
	case errors.Is(err, apierr.ErrConflict):
		return &types.FavoriteResult{ActivityID: activityId, Outcome: types.FavoriteAlreadySaved, Message: FavoriteAlreadySavedMessage}, nil
	case errors.Is(err, apierr.ErrNotFound):
		return nil, apierr.ErrNotFound.Msg("activity %d not found", activityId)
	default:
		return nil, err
	}
}

// Remove deletes the activity from the caller's library. Removing an absent favorite succeeds.
func (s *Favorite) Remove(ctx context.Context, identity *model.Identity, activityId int64) error {
	if identity.IsAnonymous() {
		return apierr.ErrUnauthorized
	}
	return s.FavoriteStore.DeleteFavorite(ctx, identity.AccountID, activityId)
}

// List returns the caller's saved activities that are currently approved.
func (s *Favorite) List(ctx context.Context, identity *model.Identity) ([]*model.Activity, error) {
	if identity.IsAnonymous() {
		return nil, apierr.ErrUnauthorized
	}
	activities, err := s.FavoriteStore.GetFavoriteActivities(ctx, identity.AccountID)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []*model.Activity{}
	}
	return activities, nil
}
