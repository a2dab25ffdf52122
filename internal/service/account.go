package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/cache"
	"eag.dev/backend/internal/pkg/apierr"
)

var ErrInvalidCredentials = apierr.ErrUnauthorized.Msg("invalid email or password")

// Accounts is what the session provider needs from the account service.
type Accounts interface {
	Authenticate(ctx context.Context, email, password string) (*model.Account, error)
	GetAccountByID(ctx context.Context, accountId int64) (*model.Account, error)
}

type Account struct {
	AccountStore AccountStore
}

func NewAccount(accountStore AccountStore) *Account {
	return &Account{
		AccountStore: accountStore,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a contributor account.
func (s *Account) SignUp(ctx context.Context, email, password string) (*model.Account, error) {
	if len(password) < constant.PasswordMinLength || len(password) > constant.PasswordMaxLength {
		return nil, apierr.ErrInvalidReq.Msg("password must be between %d and %d characters", constant.PasswordMinLength, constant.PasswordMaxLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         constant.RoleContributor,
	}
	if err := s.AccountStore.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, apierr.ErrConflict) {
			return nil, apierr.ErrConflict.Msg("an account with this email already exists")
		}
		return nil, err
	}

	log.Info().
		Str("evt.name", "account.created").
		Int64("accountId", account.AccountID).
		Msg("account created")
	return account, nil
}

// Authenticate checks the credentials. Unknown emails and wrong passwords fail alike.
func (s *Account) Authenticate(ctx context.Context, email, password string) (*model.Account, error) {
	account, err := s.AccountStore.GetAccountByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, apierr.ErrNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// Cache: account#accountId:{accountId}, 24hrs
func (s *Account) GetAccountByID(ctx context.Context, accountId int64) (*model.Account, error) {
	key := strconv.FormatInt(accountId, 10)
	var account model.Account
	err := cache.AccountByID.Get(key, &account)
	if err == nil {
		return &account, nil
	}

	dbAccount, err := s.AccountStore.GetAccountByID(ctx, accountId)
	if err != nil {
		return nil, err
	}
	go cache.AccountByID.Set(key, *dbAccount, time.Hour*24)
	return dbAccount, nil
}

// GrantRole changes the role of the account registered under email. Live sessions pick it up
// on their next request.
func (s *Account) GrantRole(ctx context.Context, email, role string) (*model.Account, error) {
	if !lo.Contains(constant.Roles, role) {
		return nil, apierr.ErrInvalidReq.Msg("unknown role %q, expected one of %s", role, strings.Join(constant.Roles, ", "))
	}
	account, err := s.AccountStore.UpdateAccountRole(ctx, normalizeEmail(email), role)
	if err != nil {
		return nil, err
	}
	if err := cache.AccountByID.Delete(strconv.FormatInt(account.AccountID, 10)); err != nil {
		return nil, err
	}

	log.Info().
		Str("evt.name", "account.role.granted").
		Int64("accountId", account.AccountID).
		Str("role", role).
		Msg("account role changed")
	return account, nil
}
