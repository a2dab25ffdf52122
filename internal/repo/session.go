package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/pkg/apierr"
)

// Session keeps sessions in redis, keyed by token, expiring on their own.
type Session struct {
	client *redis.Client
}

func NewSession(client *redis.Client) *Session {
	return &Session{client: client}
}

func (r *Session) SaveSession(ctx context.Context, token string, session *model.Session, ttl time.Duration) error {
	b, err := msgpack.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}
	return r.client.Set(ctx, constant.SessionRedisKeyPrefix+token, b, ttl).Err()
}

// GetSession returns apierr.ErrNotFound for unknown or expired tokens.
func (r *Session) GetSession(ctx context.Context, token string) (*model.Session, error) {
	b, err := r.client.Get(ctx, constant.SessionRedisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apierr.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	var session model.Session
	if err := msgpack.Unmarshal(b, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	return &session, nil
}

func (r *Session) DeleteSession(ctx context.Context, token string) error {
	return r.client.Del(ctx, constant.SessionRedisKeyPrefix+token).Err()
}
