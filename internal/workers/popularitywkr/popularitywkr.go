package popularitywkr

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"eag.dev/backend/internal/app/appconfig"
	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/jetstream"
	"eag.dev/backend/internal/pkg/observability"
	"eag.dev/backend/internal/service"
)

var ErrEmptyTask = errors.New("popularity task carries no activity ids")

type WorkerDeps struct {
	fx.In
	JetStream         nats.JetStreamContext
	PopularityService *service.Popularity
}

type Worker struct {
	// count is the number of consumers
	count int

	WorkerDeps
}

func Start(conf *appconfig.Config, lc fx.Lifecycle, deps WorkerDeps) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan error)
	w := &Worker{WorkerDeps: deps}

	consumers := conf.PopularityConsumers
	if consumers <= 0 {
		consumers = 1
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// handle & dump errors from consumers
			go func() {
				for {
					select {
					case err := <-ch:
						log.Error().Err(err).Msg("popularity worker error")
					case <-ctx.Done():
						return
					}
				}
			}()

			for i := 0; i < consumers; i++ {
				go func() {
					if err := w.Consumer(ctx, ch); err != nil && !errors.Is(err, context.Canceled) {
						ch <- err
					}
				}()
				w.count++
			}
			log.Info().Int("consumers", w.count).Msg("popularity worker started")
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func (w *Worker) Consumer(ctx context.Context, ch chan error) error {
	msgChan := make(chan *nats.Msg, 16)

	sub, err := w.JetStream.ChanQueueSubscribe(constant.PopularityIncrSubject, constant.PopularityConsumerQueue, msgChan,
		nats.AckWait(time.Second*10),
		nats.MaxAckPending(128),
		nats.ManualAck())
	if err != nil {
		log.Err(err).Msg("failed to subscribe to " + constant.PopularityIncrSubject)
		return err
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			log.Warn().Err(err).Msg("failed to unsubscribe popularity consumer")
		}
	}()

	for {
		select {
		case msg := <-msgChan:
			if err := w.handle(ctx, msg); err != nil {
				select {
				case ch <- err:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) handle(ctx context.Context, msg *nats.Msg) error {
	taskCtx, cancelTask := context.WithTimeout(ctx, time.Second*10)
	inprogressInformer := time.AfterFunc(time.Second*5, func() {
		if err := msg.InProgress(); err != nil {
			log.Error().Err(err).Msg("failed to set msg InProgress")
		}
	})
	defer func() {
		inprogressInformer.Stop()
		cancelTask()
	}()

	task, err := DecodeTask(msg.Data)
	if err != nil {
		// a malformed task never gets better; drop it
		if termErr := msg.Term(); termErr != nil {
			log.Error().Err(termErr).Msg("failed to terminate msg")
		}
		return err
	}

	start := time.Now()
	if err := w.PopularityService.Apply(taskCtx, task); err != nil {
		if nakErr := msg.Nak(); nakErr != nil {
			log.Error().Err(nakErr).Msg("failed to nak")
		}
		return errors.Wrap(err, "failed to apply popularity task")
	}
	observability.PopularityConsumeDuration.Observe(time.Since(start).Seconds())

	if err := msg.Ack(); err != nil {
		log.Error().Err(err).Msg("failed to ack")
	}

	evt := log.Debug().
		Str("evt.name", "popularity.applied").
		Int("count", len(task.ActivityIDs))
	if meta, err := msg.Metadata(); err == nil {
		evt = evt.Str("msgId", jetstream.MessageID(meta.Sequence))
	}
	evt.Msg("popularity task processed successfully")
	return nil
}

// DecodeTask parses a published popularity task.
func DecodeTask(data []byte) (*types.PopularityTask, error) {
	task := &types.PopularityTask{}
	if err := json.Unmarshal(data, task); err != nil {
		return nil, errors.Wrap(err, "failed to decode popularity task")
	}
	if len(task.ActivityIDs) == 0 {
		return nil, ErrEmptyTask
	}
	return task, nil
}
