package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs identity tokens. Required in bearer mode; its absence
	// is a startup failure, never a per-request condition.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=168h"`

	// AuthMode selects the credential mechanism the identity middleware
	// resolves: "bearer" (signed tokens) or "apikey" (store-backed keys).
	AuthMode string `env:"AUTH_MODE, default=bearer"`

	// QuerySecret protects query-secret guarded routes.
	QuerySecret string `env:"QUERY_SECRET"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,  default=accessd"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=16"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int           `env:"REDIS_DB,   default=0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
// Invalid configuration aborts startup.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return &cfg
}

func (c *Config) validate() error {
	switch c.AuthMode {
	case "bearer", "apikey":
	default:
		return fmt.Errorf("AUTH_MODE must be \"bearer\" or \"apikey\", got %q", c.AuthMode)
	}
	// Login issues tokens regardless of mode, so the secret is always needed.
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// Debug reports whether detailed error surfacing is enabled. Production
// responses stay opaque.
func (c *Config) Debug() bool {
	return c.Env == "development"
}
