package service

import (
	"context"
	"time"

	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/cursor"
)

// ActivityStore is the persistence surface of the activity catalog, implemented by *repo.Activity.
type ActivityStore interface {
	SearchApproved(ctx context.Context, query *types.CatalogQuery) ([]*model.Activity, error)
	GetActivityByID(ctx context.Context, activityId int64) (*model.Activity, error)
	GetApprovedActivityByID(ctx context.Context, activityId int64) (*model.Activity, error)
	CreateActivity(ctx context.Context, activity *model.Activity) error
	ListActivitiesPage(ctx context.Context, status string, after *cursor.Cursor, limit int, term string) ([]*model.Activity, error)
	UpdateActivityStatus(ctx context.Context, activityId int64, status string) error
	PatchActivity(ctx context.Context, activityId int64, patch *types.ActivityPatch) error
	DeleteActivity(ctx context.Context, activityId int64) error
	IncrementPopularity(ctx context.Context, activityIds []int64) error
}

type FavoriteStore interface {
	CreateFavorite(ctx context.Context, favorite *model.Favorite) error
	DeleteFavorite(ctx context.Context, accountId, activityId int64) error
	GetFavoriteActivities(ctx context.Context, accountId int64) ([]*model.Activity, error)
}

type AccountStore interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByID(ctx context.Context, accountId int64) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	UpdateAccountRole(ctx context.Context, email string, role string) (*model.Account, error)
}

type SessionStore interface {
	SaveSession(ctx context.Context, token string, session *model.Session, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// EventPublisher publishes a JSON payload to a subject without waiting for acknowledgement.
type EventPublisher interface {
	Publish(subject string, payload any) error
}
