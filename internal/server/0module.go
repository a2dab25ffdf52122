package server

import (
	"go.uber.org/fx"

	"eag.dev/backend/internal/pkg/middlewares"
	"eag.dev/backend/internal/server/httpserver"
	"eag.dev/backend/internal/server/svr"
	"eag.dev/backend/internal/service"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(func(s *service.Session) middlewares.IdentityResolver { return s }),
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
