package runscript

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "eag.dev/backend/cmd/app/cli"
	script_grantrole "eag.dev/backend/cmd/app/cli/runscript/scripts/grantrole"
	script_migrate "eag.dev/backend/cmd/app/cli/runscript/scripts/migrate"
	script_seed "eag.dev/backend/cmd/app/cli/runscript/scripts/seed"
)

// depsFn defers building the fx graph until the chosen script actually runs.
func depsFn[T any]() func() T {
	return func() T {
		var deps T
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "run-script",
		Description: "run maintenance go scripts",
		Subcommands: []*cli.Command{
			script_migrate.Command(depsFn[script_migrate.CommandDeps]()),
			script_grantrole.Command(depsFn[script_grantrole.CommandDeps]()),
			script_seed.Command(depsFn[script_seed.CommandDeps]()),
		},
	}
}
