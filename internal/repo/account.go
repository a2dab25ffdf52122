package repo

import (
	"context"

	"github.com/uptrace/bun"

	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/repo/selector"
)

type Account struct {
	db  *bun.DB
	sel selector.S[model.Account]
}

func NewAccount(db *bun.DB) *Account {
	return &Account{
		db:  db,
		sel: selector.New[model.Account](db),
	}
}

func (r *Account) CreateAccount(ctx context.Context, account *model.Account) error {
	_, err := r.db.NewInsert().
		Model(account).
		Returning("account_id, created_at").
		Exec(ctx)
	return apierr.Translate(err)
}

func (r *Account) GetAccountByID(ctx context.Context, accountId int64) (*model.Account, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("ac.account_id = ?", accountId)
	})
}

func (r *Account) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("ac.email = ?", email)
	})
}

func (r *Account) UpdateAccountRole(ctx context.Context, email string, role string) (*model.Account, error) {
	var account model.Account
	res, err := r.db.NewUpdate().
		Model(&account).
		Set("role = ?", role).
		Where("email = ?", email).
		Returning("*").
		Exec(ctx)
	if err := affectedOne(res, err); err != nil {
		return nil, err
	}
	return &account, nil
}
