package controller

import (
	"go.uber.org/fx"

	controlleradmin "eag.dev/backend/internal/controller/admin"
	controllermeta "eag.dev/backend/internal/controller/meta"
	controllerv1 "eag.dev/backend/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (admin)
		controlleradmin.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
