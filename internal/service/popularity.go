package service

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/observability"
)

// Popularity counts how often activities show up in search results. Increments are published to
// JetStream by Record and applied to the store by the popularity worker through Apply.
type Popularity struct {
	Publisher     EventPublisher
	ActivityStore ActivityStore
}

func NewPopularity(publisher EventPublisher, activityStore ActivityStore) *Popularity {
	return &Popularity{
		Publisher:     publisher,
		ActivityStore: activityStore,
	}
}

// Record publishes an increment for every id. It never fails the caller; publish errors are only logged.
func (s *Popularity) Record(activityIds []int64) {
	if len(activityIds) == 0 {
		return
	}
	task := &types.PopularityTask{
		ActivityIDs: activityIds,
		CreatedAt:   time.Now().UnixMicro(),
	}
	if err := s.Publisher.Publish(constant.PopularityIncrSubject, task); err != nil {
		observability.PopularityPublishFailures.Inc()
		log.Warn().
			Str("evt.name", "popularity.publish.failed").
			Err(err).
			Int("count", len(activityIds)).
			Msg("failed to publish popularity increment")
	}
}

func (s *Popularity) Apply(ctx context.Context, task *types.PopularityTask) error {
	return retry.Do(
		func() error {
			return s.ActivityStore.IncrementPopularity(ctx, task.ActivityIDs)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(time.Millisecond*200),
		retry.LastErrorOnly(true),
	)
}
