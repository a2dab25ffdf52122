package admin

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controller.admin", fx.Invoke(
		RegisterModeration,
	))
}
