package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"eag.dev/backend/internal/app/appconfig"
	"eag.dev/backend/internal/constant"
)

var streams = []*nats.StreamConfig{
	{
		Name:       constant.PopularityStreamName,
		Subjects:   []string{constant.PopularitySubjectPrefix + "*"},
		Retention:  nats.WorkQueuePolicy,
		Discard:    nats.DiscardOld,
		Storage:    nats.FileStorage,
		Replicas:   1,
		Duplicates: time.Minute * 10,
	},
	{
		Name:      constant.SessionStreamName,
		Subjects:  []string{constant.SessionSubjectPrefix + "*"},
		Retention: nats.LimitsPolicy,
		Discard:   nats.DiscardOld,
		Storage:   nats.FileStorage,
		Replicas:  1,
		MaxAge:    time.Hour * 24,
	},
}

func NATS(conf *appconfig.Config, lc fx.Lifecycle) (*nats.Conn, nats.JetStreamContext, error) {
	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "infra.nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	nc, err := nats.Connect(conf.NatsURL, nats.PingInterval(time.Second*20), nats.ErrorHandler(errorHandler))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, nil, err
	}

	js, err := nc.JetStream(nats.PublishAsyncMaxPending(256))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to initialize NATS JetStream")
		return nil, nil, err
	}

	for _, stream := range streams {
		if err := ensureStream(js, stream); err != nil {
			return nil, nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			select {
			case <-js.PublishAsyncComplete():
			case <-ctx.Done():
				log.Warn().Str("evt.name", "infra.nats.flush.timeout").Msg("pending async publishes dropped on shutdown")
			}
			return nc.Drain()
		},
	})

	return nc, js, nil
}

// ensureStream creates the stream, or updates it in place when it already exists.
func ensureStream(js nats.JetStreamContext, stream *nats.StreamConfig) error {
	return retry.Do(
		func() error {
			_, err := js.AddStream(stream)
			if errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
				_, err = js.UpdateStream(stream)
			}
			return err
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Err(err).
				Str("evt.name", "infra.nats.stream.retry").
				Str("stream", stream.Name).
				Uint("attempt", n+1).
				Msg("failed to provision jetstream stream, retrying")
		}),
	)
}
