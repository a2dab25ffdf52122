package repo

import (
	"context"

	"github.com/uptrace/bun"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/repo/selector"
)

type Favorite struct {
	db  *bun.DB
	sel selector.S[model.Activity]
}

func NewFavorite(db *bun.DB) *Favorite {
	return &Favorite{
		db:  db,
		sel: selector.New[model.Activity](db),
	}
}

// CreateFavorite inserts the pair. A pair that already exists yields apierr.ErrConflict,
// a missing activity or account yields apierr.ErrNotFound.
func (r *Favorite) CreateFavorite(ctx context.Context, favorite *model.Favorite) error {
	_, err := r.db.NewInsert().
		Model(favorite).
		Exec(ctx)
	return apierr.Translate(err)
}

func (r *Favorite) DeleteFavorite(ctx context.Context, accountId, activityId int64) error {
	_, err := r.db.NewDelete().
		Model((*model.Favorite)(nil)).
		Where("account_id = ?", accountId).
		Where("activity_id = ?", activityId).
		Exec(ctx)
	return err
}

// GetFavoriteActivities returns the account's saved approved activities, most recently saved first.
func (r *Favorite) GetFavoriteActivities(ctx context.Context, accountId int64) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Join("JOIN favorites AS f ON f.activity_id = a.activity_id").
			Where("f.account_id = ?", accountId).
			Where("a.status = ?", constant.StatusApproved).
			OrderExpr("f.created_at DESC, a.activity_id DESC")
	})
}
