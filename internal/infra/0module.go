package infra

import (
	"go.uber.org/fx"

	"eag.dev/backend/internal/pkg/jetstream"
)

func Module() fx.Option {
	return fx.Module("infra", fx.Provide(
		NATS,
		Redis,
		RedSync,
		Postgres,
		jetstream.NewPublisher,
	))
}
