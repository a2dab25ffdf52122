package service

import (
	"go.uber.org/fx"

	"eag.dev/backend/internal/pkg/jetstream"
	"eag.dev/backend/internal/repo"
)

func Module() fx.Option {
	return fx.Module("service",
		fx.Provide(
			func(r *repo.Activity) ActivityStore { return r },
			func(r *repo.Favorite) FavoriteStore { return r },
			func(r *repo.Account) AccountStore { return r },
			func(r *repo.Session) SessionStore { return r },
			func(p *jetstream.Publisher) EventPublisher { return p },
			func(s *Account) Accounts { return s },
		),
		fx.Provide(
			NewHealth,
			NewExport,
			NewAccount,
			NewSession,
			NewCatalog,
			NewFavorite,
			NewModeration,
			NewPopularity,
			NewSubmission,
		),
		fx.Invoke(ObserveSessionChanges),
	)
}
