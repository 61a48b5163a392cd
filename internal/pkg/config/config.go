package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Insecure fallbacks for the auth secrets. They let a development process
// start without setup and must never reach production.
const (
	DefaultJWTSecret = "dontusedefaultkeys"
	DefaultHashSalt  = "dontusedefaultsalt"
)

type Config struct {
	Port        string        `env:"PORT, default=3000"`
	Env         string        `env:"ENV, default=development"`
	LogLevel    string        `env:"LOG_LEVEL, default=info"`
	LogPretty   bool          `env:"LOG_PRETTY, default=false"`
	ThreadCount int           `env:"THREAD_COUNT, default=0"`
	Shutdown    time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET, default=dontusedefaultkeys"`
	HashSalt     string        `env:"HASH_SALT, default=dontusedefaultsalt"`
	TokenTTL     time.Duration `env:"TOKEN_TTL, default=8760h"`
	EventWorkers int           `env:"AUTH_EVENT_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGODB_NAME, default=postboard"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// ErrEmptySecret is returned when JWT_SECRET or HASH_SALT is set to "".
// go-envconfig only applies a default to unset variables.
var ErrEmptySecret = errors.New("secret must not be empty")

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET: %w", ErrEmptySecret)
	}
	if cfg.Auth.HashSalt == "" {
		return nil, fmt.Errorf("HASH_SALT: %w", ErrEmptySecret)
	}
	return &cfg, nil
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// InsecureDefaults returns the names of the auth secrets that are empty or
// still set to their built-in fallback values.
func (c *Config) InsecureDefaults() []string {
	var names []string
	if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == DefaultJWTSecret {
		names = append(names, "JWT_SECRET")
	}
	if c.Auth.HashSalt == "" || c.Auth.HashSalt == DefaultHashSalt {
		names = append(names, "HASH_SALT")
	}
	return names
}
