package constant

import "time"

const (
	ContextKeyRequestID = "requestid"

	// LocalsIdentityKey is the fiber.Ctx locals key holding the resolved *model.Identity
	LocalsIdentityKey = "identity"

	// LocalsTranslatorKey is the fiber.Ctx locals key holding the request's ut.Translator
	LocalsTranslatorKey = "T"

	RequestIDHeader = "X-Eag-Request-ID"

	IdempotencyHeader    = "X-Eag-Idempotency"
	IdempotencyKeyHeader = "Idempotency-Key"

	IdempotencyKeyLengthLimit = 128

	IdempotencyKeyLocalsKey = "idempotencyKey"

	SubmissionIdempotencyRedisHashKey = "eag:idempotency:submission"
	FavoriteIdempotencyRedisHashKey   = "eag:idempotency:favorite"

	IdempotencyLifetime = time.Hour * 24
)
