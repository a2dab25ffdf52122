package script_grantrole

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"eag.dev/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	AccountService *service.Account
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "grant-role",
		Description: "grant a role to an existing account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Usage:    "email of the account",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "role",
				Usage:    "one of contributor, moderator, admin",
				Required: true,
			},
		},
		Action: func(ctx *cli.Context) error {
			deps := depsFn()
			account, err := deps.AccountService.GrantRole(ctx.Context, ctx.String("email"), ctx.String("role"))
			if err != nil {
				return err
			}
			log.Info().
				Int64("accountId", account.AccountID).
				Str("role", account.Role).
				Msg("role granted")
			return nil
		},
	}
}
