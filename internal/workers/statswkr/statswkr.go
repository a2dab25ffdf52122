package statswkr

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"eag.dev/backend/internal/app/appconfig"
	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	RedSync           *redsync.Redsync
	ModerationService *service.Moderation
}

type Worker struct {
	// count counts runs worker has completed so far
	count int

	// interval describes the interval in-between different runs
	interval time.Duration

	// timeout bounds a single run, and is also the lock expiry
	timeout time.Duration

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, lc fx.Lifecycle, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("catalog stats worker disabled")
		return
	}

	w := &Worker{
		interval:   conf.WorkerInterval,
		timeout:    conf.WorkerTimeout,
		WorkerDeps: deps,
	}
	var cancel context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			cancel = w.do()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			w.run(ctx)

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.interval):
			}
		}
	}()

	return cancel
}

// run refreshes the stats snapshot, unless another instance holds the lock.
func (w *Worker) run(ctx context.Context) {
	mutex := w.RedSync.NewMutex(constant.StatsLockKey, redsync.WithExpiry(w.timeout), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		log.Debug().Err(err).Msg("catalog stats run skipped: lock held elsewhere")
		return
	}
	defer func() {
		if _, err := mutex.UnlockContext(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to release catalog stats lock")
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	log.Info().Int("count", w.count).Msg("worker run started")
	err := observeStatsDuration(func() error {
		stats, err := w.ModerationService.ComputeStats(runCtx)
		if err != nil {
			return err
		}
		publishGauges(stats)
		return w.ModerationService.StoreStats(stats)
	})
	if err != nil {
		log.Error().Err(err).Int("count", w.count).Msg("worker run failed")
		return
	}

	log.Info().Int("count", w.count).Msg("worker run finished")
	w.count++
}

func (w *Worker) Count() int {
	return w.count
}
