package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"eag.dev/backend/internal/app/appconfig"
	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/cache"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/cursor"
	"eag.dev/backend/internal/pkg/observability"
	"eag.dev/backend/internal/util/catalogstats"
	"eag.dev/backend/internal/util/rekuest"
)

const catalogStatsKey = "latest"

type Moderation struct {
	ActivityStore ActivityStore
	PageSize      int
	GapThreshold  float64
}

func NewModeration(activityStore ActivityStore, conf *appconfig.Config) *Moderation {
	pageSize := conf.ModerationPageSize
	if pageSize <= 0 || pageSize > constant.MaxModerationPageSize {
		pageSize = constant.DefaultModerationPageSize
	}
	return &Moderation{
		ActivityStore: activityStore,
		PageSize:      pageSize,
		GapThreshold:  float64(conf.GapThreshold),
	}
}

// Overview reads the whole catalog page by page and derives the dashboard from it.
func (s *Moderation) Overview(ctx context.Context) (*types.ModerationOverview, error) {
	activities, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	approved, pending := catalogstats.Partition(activities)
	return &types.ModerationOverview{
		Stats:   catalogstats.Compute(approved, len(pending), s.GapThreshold),
		Pending: pending,
	}, nil
}

// ComputeStats is Overview without the pending list.
func (s *Moderation) ComputeStats(ctx context.Context) (*catalogstats.Stats, error) {
	overview, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return overview.Stats, nil
}

// Cache: catalogStats:latest, refreshed by the stats worker
func (s *Moderation) CachedStats(ctx context.Context) (*catalogstats.Stats, error) {
	var stats catalogstats.Stats
	err := cache.CatalogStats.MutexGetSet(catalogStatsKey, &stats, func() (catalogstats.Stats, error) {
		computed, err := s.ComputeStats(ctx)
		if err != nil {
			return catalogstats.Stats{}, err
		}
		return *computed, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// StoreStats replaces the cached snapshot.
func (s *Moderation) StoreStats(stats *catalogstats.Stats) error {
	return cache.CatalogStats.Set(catalogStatsKey, *stats, time.Hour)
}

func (s *Moderation) readAll(ctx context.Context) ([]*model.Activity, error) {
	all := make([]*model.Activity, 0, s.PageSize)
	var after *cursor.Cursor
	for {
		page, err := s.ActivityStore.ListActivitiesPage(ctx, "", after, s.PageSize, "")
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < s.PageSize {
			return all, nil
		}
		last := page[len(page)-1]
		after = &cursor.Cursor{CreatedAt: last.CreatedAt, ID: last.ActivityID}
	}
}

// List returns one page of activities, newest first.
func (s *Moderation) List(ctx context.Context, req *types.ActivityPageRequest) (*types.ActivityPage, error) {
	after, err := cursor.Decode(req.Cursor)
	if err != nil {
		return nil, apierr.ErrInvalidReq.Msg("invalid cursor: %s", err)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = s.PageSize
	}
	if limit > constant.MaxModerationPageSize {
		limit = constant.MaxModerationPageSize
	}

	// one extra row tells whether another page exists
	activities, err := s.ActivityStore.ListActivitiesPage(ctx, req.Status, after, limit+1, req.Term)
	if err != nil {
		return nil, err
	}

	page := &types.ActivityPage{Activities: activities}
	if len(activities) > limit {
		page.Activities = activities[:limit]
		last := page.Activities[limit-1]
		page.NextCursor = cursor.Encode(&cursor.Cursor{CreatedAt: last.CreatedAt, ID: last.ActivityID})
	}
	if page.Activities == nil {
		page.Activities = []*model.Activity{}
	}
	return page, nil
}

func (s *Moderation) Approve(ctx context.Context, identity *model.Identity, activityId int64) (*types.ModerationOverview, error) {
	if err := authorize(identity, constant.RoleModerator); err != nil {
		return nil, err
	}
	if err := s.ActivityStore.UpdateActivityStatus(ctx, activityId, constant.StatusApproved); err != nil {
		return nil, err
	}
	s.audit("approve", identity, activityId)
	return s.Overview(ctx)
}

// Edit changes the text fields of an activity. Facets and status are left untouched.
func (s *Moderation) Edit(ctx context.Context, identity *model.Identity, activityId int64, patch *types.ActivityPatch) (*types.ModerationOverview, error) {
	if err := authorize(identity, constant.RoleModerator); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, apierr.ErrInvalidReq.Msg("nothing to update")
	}
	if blankWhenSet(patch.Title) || blankWhenSet(patch.Description) {
		return nil, apierr.ErrInvalidReq.Msg("title and description cannot be blank")
	}
	if err := rekuest.Check(patch); err != nil {
		return nil, err
	}
	if err := s.ActivityStore.PatchActivity(ctx, activityId, patch); err != nil {
		return nil, err
	}
	s.audit("edit", identity, activityId)
	return s.Overview(ctx)
}

// Delete removes an activity permanently. Only admins may delete.
func (s *Moderation) Delete(ctx context.Context, identity *model.Identity, activityId int64) (*types.ModerationOverview, error) {
	if err := authorize(identity, constant.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.ActivityStore.DeleteActivity(ctx, activityId); err != nil {
		return nil, err
	}
	s.audit("delete", identity, activityId)
	return s.Overview(ctx)
}

func (s *Moderation) audit(action string, identity *model.Identity, activityId int64) {
	observability.ModerationActions.WithLabelValues(action).Inc()
	log.Info().
		Str("evt.name", "moderation."+action).
		Int64("activityId", activityId).
		Int64("accountId", identity.AccountID).
		Msg("moderation action applied")
}
