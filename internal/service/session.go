package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"eag.dev/backend/internal/app/appconfig"
	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/observability"
	"eag.dev/backend/internal/pkg/sessionid"
)

// Session is the session provider: it signs accounts in and out, resolves tokens into identities
// and tells subscribers whenever a session starts or ends.
type Session struct {
	Accounts     Accounts
	SessionStore SessionStore
	Publisher    EventPublisher
	TTL          time.Duration

	mu          sync.RWMutex
	nextID      int
	subscribers map[int]func(model.SessionEvent)
}

func NewSession(accounts Accounts, sessionStore SessionStore, publisher EventPublisher, conf *appconfig.Config) *Session {
	ttl := conf.SessionTTL
	if ttl <= 0 {
		ttl = constant.DefaultSessionTTL
	}
	return &Session{
		Accounts:     accounts,
		SessionStore: sessionStore,
		Publisher:    publisher,
		TTL:          ttl,
		subscribers:  make(map[int]func(model.SessionEvent)),
	}
}

func (s *Session) SignIn(ctx context.Context, email, password string) (*types.SessionResponse, error) {
	account, err := s.Accounts.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token := sessionid.New()
	session := &model.Session{
		AccountID: account.AccountID,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: time.Now(),
	}
	if err := s.SessionStore.SaveSession(ctx, token, session, s.TTL); err != nil {
		return nil, err
	}

	s.emit(model.SessionEvent{Kind: model.SessionSignedIn, AccountID: account.AccountID, Role: account.Role, At: session.CreatedAt})

	return &types.SessionResponse{
		Token:    token,
		Identity: account.Identity(),
	}, nil
}

// SignOut ends the session behind token. Unknown tokens are ignored.
func (s *Session) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	session, err := s.SessionStore.GetSession(ctx, token)
	if errors.Is(err, apierr.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}

	if err := s.SessionStore.DeleteSession(ctx, token); err != nil {
		return err
	}
	s.emit(model.SessionEvent{Kind: model.SessionSignedOut, AccountID: session.AccountID, Role: session.Role, At: time.Now()})
	return nil
}

// Current resolves token into the caller's identity. Missing or expired sessions are anonymous.
// The role is read from the account rather than the session so that role changes apply right away.
func (s *Session) Current(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return model.Anonymous, nil
	}
	session, err := s.SessionStore.GetSession(ctx, token)
	if errors.Is(err, apierr.ErrNotFound) {
		return model.Anonymous, nil
	} else if err != nil {
		return nil, err
	}

	account, err := s.Accounts.GetAccountByID(ctx, session.AccountID)
	if errors.Is(err, apierr.ErrNotFound) {
		// account is gone; the session goes with it
		if err := s.SessionStore.DeleteSession(ctx, token); err != nil {
			log.Warn().Err(err).Int64("accountId", session.AccountID).Msg("failed to delete orphaned session")
		}
		return model.Anonymous, nil
	} else if err != nil {
		return nil, err
	}

	return account.Identity(), nil
}

// Subscribe registers fn for every subsequent session change. The returned func unregisters it.
func (s *Session) Subscribe(fn func(model.SessionEvent)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Session) emit(evt model.SessionEvent) {
	s.mu.RLock()
	subscribers := make([]func(model.SessionEvent), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subscribers {
		fn(evt)
	}

	if err := s.Publisher.Publish(constant.SessionChangeSubject, evt); err != nil {
		log.Warn().
			Str("evt.name", "session.publish.failed").
			Err(err).
			Str("kind", evt.Kind).
			Msg("failed to publish session change")
	}
}

// ObserveSessionChanges counts and logs every session change.
func ObserveSessionChanges(s *Session) {
	s.Subscribe(func(evt model.SessionEvent) {
		observability.SessionChanges.WithLabelValues(evt.Kind).Inc()
		log.Info().
			Str("evt.name", "session."+evt.Kind).
			Int64("accountId", evt.AccountID).
			Str("role", evt.Role).
			Msg("session changed")
	})
}
