package script_migrate

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"eag.dev/backend/internal/repo"
)

type CommandDeps struct {
	fx.In

	Schema *repo.Schema
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "migrate",
		Description: "create or upgrade the database schema",
		Action: func(ctx *cli.Context) error {
			deps := depsFn()
			if err := deps.Schema.Migrate(ctx.Context); err != nil {
				return err
			}
			log.Info().Msg("schema migrated")
			return nil
		},
	}
}
