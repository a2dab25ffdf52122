package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"eag.dev/backend/cmd/app/cli/runscript"
	"eag.dev/backend/cmd/app/server"
	"eag.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "eagbackend",
		Description: "The activity catalog backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS as MQ and Redis for sessions and caches.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			runscript.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
