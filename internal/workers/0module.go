package workers

import (
	"go.uber.org/fx"

	"eag.dev/backend/internal/workers/popularitywkr"
	"eag.dev/backend/internal/workers/statswkr"
)

func Module() fx.Option {
	return fx.Module("workers", fx.Invoke(
		popularitywkr.Start,
		statswkr.Start,
	))
}
