package repo

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"gopkg.in/guregu/null.v3"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/cursor"
	"eag.dev/backend/internal/pkg/pgqry"
	"eag.dev/backend/internal/repo/selector"
)

type Activity struct {
	db  *bun.DB
	sel selector.S[model.Activity]
}

func NewActivity(db *bun.DB) *Activity {
	return &Activity{
		db:  db,
		sel: selector.New[model.Activity](db),
	}
}

func (r *Activity) SearchApproved(ctx context.Context, query *types.CatalogQuery) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return pgqry.Catalog(q, query)
	})
}

func (r *Activity) GetActivityByID(ctx context.Context, activityId int64) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("a.activity_id = ?", activityId)
	})
}

func (r *Activity) GetApprovedActivityByID(ctx context.Context, activityId int64) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return pgqry.New(q.Where("a.activity_id = ?", activityId)).
			DoFilterStatus(constant.StatusApproved).
			Q
	})
}

func (r *Activity) CreateActivity(ctx context.Context, activity *model.Activity) error {
	_, err := r.db.NewInsert().
		Model(activity).
		Returning("activity_id, created_at").
		Exec(ctx)
	return apierr.Translate(err)
}

// ListActivitiesPage returns up to limit activities, newest first, strictly after the cursor.
// An empty status lists every status.
func (r *Activity) ListActivitiesPage(ctx context.Context, status string, after *cursor.Cursor, limit int, term string) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return pgqry.New(q).
			DoFilterStatus(status).
			DoFilterTextOnly(term).
			DoKeysetAfter(after).
			NewestFirst().
			Q.
			Limit(limit)
	})
}

func (r *Activity) UpdateActivityStatus(ctx context.Context, activityId int64, status string) error {
	res, err := r.db.NewUpdate().
		Model((*model.Activity)(nil)).
		Set("status = ?", status).
		Where("activity_id = ?", activityId).
		Exec(ctx)
	return affectedOne(res, err)
}

func (r *Activity) PatchActivity(ctx context.Context, activityId int64, patch *types.ActivityPatch) error {
	q := r.db.NewUpdate().
		Model((*model.Activity)(nil)).
		Where("activity_id = ?", activityId)

	if patch.Title.Valid {
		q = q.Set("title = ?", patch.Title.String)
	}
	if patch.Description.Valid {
		q = q.Set("description = ?", patch.Description.String)
	}
	if patch.MakeItEasier.Valid {
		q = q.Set("make_it_easier = ?", emptyAsNull(patch.MakeItEasier))
	}
	if patch.MakeItHarder.Valid {
		q = q.Set("make_it_harder = ?", emptyAsNull(patch.MakeItHarder))
	}

	res, err := q.Exec(ctx)
	return affectedOne(res, err)
}

func (r *Activity) DeleteActivity(ctx context.Context, activityId int64) error {
	res, err := r.db.NewDelete().
		Model((*model.Activity)(nil)).
		Where("activity_id = ?", activityId).
		Exec(ctx)
	return affectedOne(res, err)
}

// IncrementPopularity bumps the popularity counter of every id by one through the stored procedure.
func (r *Activity) IncrementPopularity(ctx context.Context, activityIds []int64) error {
	if len(activityIds) == 0 {
		return nil
	}
	_, err := r.db.NewRaw("SELECT increment_popularity(?)", pgdialect.Array(activityIds)).Exec(ctx)
	return err
}

func emptyAsNull(s null.String) null.String {
	return null.NewString(s.String, s.String != "")
}
