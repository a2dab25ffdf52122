package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/cache"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/observability"
)

type Catalog struct {
	ActivityStore ActivityStore
	Popularity    *Popularity
}

func NewCatalog(activityStore ActivityStore, popularity *Popularity) *Catalog {
	return &Catalog{
		ActivityStore: activityStore,
		Popularity:    popularity,
	}
}

// Search returns the approved activities matching query in random order, and records an
// impression for each of them. On a store failure no partial result is returned.
func (s *Catalog) Search(ctx context.Context, query *types.CatalogQuery) ([]*model.Activity, error) {
	start := time.Now()
	activities, err := s.ActivityStore.SearchApproved(ctx, query)
	if err != nil {
		observability.CatalogSearches.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.CatalogSearchDuration.Observe(time.Since(start).Seconds())

	if len(activities) == 0 {
		observability.CatalogSearches.WithLabelValues("empty").Inc()
		return []*model.Activity{}, nil
	}
	observability.CatalogSearches.WithLabelValues("found").Inc()

	activities = lo.Shuffle(activities)
	s.Popularity.Record(lo.Map(activities, func(a *model.Activity, _ int) int64 { return a.ActivityID }))

	return activities, nil
}

func (s *Catalog) GetActivity(ctx context.Context, activityId int64) (*model.Activity, error) {
	return s.ActivityStore.GetApprovedActivityByID(ctx, activityId)
}

// Cache: (singular) facets, 1 hr
func (s *Catalog) Facets() (*types.Facets, error) {
	var facets types.Facets
	err := cache.Facets.MutexGetSet(&facets, func() (types.Facets, error) {
		return types.Facets{
			AgeGroups:     constant.AgeGroups,
			Categories:    constant.Categories,
			GroupSizes:    constant.GroupSizes,
			Materials:     constant.Materials,
			QuickSearches: constant.QuickSearches,
		}, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return &facets, nil
}
