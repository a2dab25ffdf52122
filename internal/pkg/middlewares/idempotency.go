package middlewares

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/util/rekuest"
)

type IdempotencyConfig struct {
	// Lifetime is the maximum lifetime of an idempotency key.
	Lifetime time.Duration

	// KeyHeader is the name of the header that contains the idempotency key.
	KeyHeader string

	// KeepResponseHeaders is a list of headers that should be kept from the original response.
	// By default, all headers are kept.
	KeepResponseHeaders []string

	keepResponseHeadersMap map[string]struct{}

	// Storage is the storage backend for the idempotency key & its response data.
	Storage fiber.Storage

	RedSync *redsync.Redsync
}

type idempotencyResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Idempotency replays the stored response of a previous request carrying the same key from the
// same account. Keys are scoped per account, so two accounts never see each other's responses.
// Requests that fail are not stored and may be retried with the same key.
func Idempotency(config *IdempotencyConfig) fiber.Handler {
	config.keepResponseHeadersMap = make(map[string]struct{})
	for _, header := range config.KeepResponseHeaders {
		config.keepResponseHeadersMap[strings.ToLower(header)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		key := c.Get(config.KeyHeader)
		if key == "" {
			return c.Next()
		}

		if err := rekuest.Validate.Var(key, "max=128,printascii"); err != nil {
			return apierr.ErrInvalidReq.Msg("invalid idempotency key: idempotency key can only be at most %d printable ASCII characters", constant.IdempotencyKeyLengthLimit)
		}

		c.Locals(constant.IdempotencyKeyLocalsKey, key)
		storageKey := strconv.FormatInt(IdentityFromCtx(c).AccountID, 10) + ":" + key

		if exist, err := replayStored(c, config, storageKey); exist {
			return err
		}

		mutex := config.RedSync.NewMutex("mutex:idempotency-request:"+storageKey,
			redsync.WithExpiry(time.Minute),
			redsync.WithTries(5),
			redsync.WithRetryDelay(time.Millisecond*250))

		if err := mutex.Lock(); err != nil {
			log.Err(err).
				Str("evt.name", "http.idempotency.lock.failed").
				Str("key", storageKey).
				Msg("failed to lock idempotency key")
			return apierr.ErrConflict.Msg("idempotency key is in use by a concurrent request; retry with backoff")
		}
		defer func() {
			if _, err := mutex.Unlock(); err != nil {
				log.Err(err).
					Str("evt.name", "http.idempotency.unlock.failed").
					Str("key", storageKey).
					Msg("failed to unlock idempotency key")
			}
		}()

		// re-check under the lock: a concurrent holder may have stored a response meanwhile
		if exist, err := replayStored(c, config, storageKey); exist {
			return err
		}

		if err := c.Next(); err != nil {
			return err
		}

		b, err := marshalResponse(c, config)
		if err != nil {
			log.Error().
				Err(err).
				Str("evt.name", "http.idempotency.response.marshal.failed").
				Msg("failed to marshal response; not storing it")
			return err
		}

		if err := config.Storage.Set(storageKey, b, config.Lifetime); err != nil {
			log.Error().
				Err(err).
				Str("evt.name", "http.idempotency.response.save.failed").
				Msg("failed to store idempotency response")
			return err
		}

		c.Set(constant.IdempotencyHeader, "saved")
		return nil
	}
}

func marshalResponse(c *fiber.Ctx, conf *IdempotencyConfig) ([]byte, error) {
	response := idempotencyResponse{
		StatusCode: c.Response().StatusCode(),
		Headers:    make(map[string]string),
		Body:       c.Response().Body(),
	}

	c.Response().Header.VisitAll(func(k, v []byte) {
		header := string(k)
		if conf.KeepResponseHeaders != nil {
			if _, ok := conf.keepResponseHeadersMap[strings.ToLower(header)]; !ok {
				return
			}
		}
		response.Headers[header] = string(v)
	})

	return msgpack.Marshal(response)
}

func replayStored(c *fiber.Ctx, conf *IdempotencyConfig, key string) (bool, error) {
	b, err := conf.Storage.Get(key)
	if err != nil || b == nil {
		return false, nil
	}

	var response idempotencyResponse
	if err := msgpack.Unmarshal(b, &response); err != nil {
		return true, err
	}

	log.Debug().
		Str("evt.name", "http.idempotency.hit").
		Str("key", key).
		Msg("replaying stored idempotency response")

	c.Status(response.StatusCode)
	for header, value := range response.Headers {
		c.Set(header, value)
	}
	c.Set(constant.IdempotencyHeader, "hit")

	if len(response.Body) > 0 {
		return true, c.Send(response.Body)
	}
	return true, nil
}
