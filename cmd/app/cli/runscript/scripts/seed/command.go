package script_seed

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"eag.dev/backend/internal/repo"
	"eag.dev/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	AccountRepo       *repo.Account
	SubmissionService *service.Submission
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "seed",
		Description: "submit the bundled starter activities on behalf of an account; admins publish them directly",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Usage:    "email of the submitting account",
				Required: true,
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}
