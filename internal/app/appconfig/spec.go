package appconfig

import (
	"time"

	"eag.dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// AllowOrigins is the CORS allow-list of browser origins.
	AllowOrigins string `split_words:"true" default:"*"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// infrastructure components connection instructions

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// NatsURL is the URL of the NATS server. See https://pkg.go.dev/github.com/nats-io/nats.go#Connect
	// for more information on how to construct a NATS URL.
	NatsURL string `required:"true" split_words:"true" default:"nats://127.0.0.1:4222"`

	// RedisURL is the URL of the Redis server. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL
	// for more information on how to construct a Redis URL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/0"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// SessionTTL is how long a session token stays valid after sign-in.
	SessionTTL time.Duration `split_words:"true" default:"336h"`

	// GapThreshold is the share of approved activities under which a facet value is reported as a
	// coverage gap on the moderation dashboard.
	GapThreshold Ratio `split_words:"true" default:"0.15"`

	// ModerationPageSize is the page size used when the moderation overview streams the catalog.
	ModerationPageSize int `split_words:"true" default:"100"`

	// WorkerEnabled is a flag to indicate whether to enable the catalog stats worker.
	WorkerEnabled bool `split_words:"true" default:"true"`

	// WorkerInterval describes the interval in-between different stats runs
	WorkerInterval time.Duration `required:"true" split_words:"true" default:"10m"`

	// WorkerTimeout describes the timeout for a single stats run
	WorkerTimeout time.Duration `required:"true" split_words:"true" default:"2m"`

	// PopularityConsumers is the number of popularity increment consumers started per instance.
	PopularityConsumers int `split_words:"true" default:"2"`
}

type Config struct {
	// ConfigSpec holds the values parsed from the environment.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
