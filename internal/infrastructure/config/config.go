package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,           default=4000"`
	Env           string        `env:"ENV,            default=development"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,      default=168h"`
	AllowedOrigin string        `env:"ALLOWED_ORIGIN, default=http://localhost:3000"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Stripe  StripeConfig
	Mistral MistralConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StripeConfig struct {
	SecretKey  string `env:"STRIPE_SECRET_KEY"`
	SuccessURL string `env:"CHECKOUT_SUCCESS_URL, default=http://localhost:3000/success"`
	CancelURL  string `env:"CHECKOUT_CANCEL_URL,  default=http://localhost:3000/cancel"`
}

type MistralConfig struct {
	APIKey string `env:"MISTRAL_API_KEY"`
	Model  string `env:"MISTRAL_MODEL, default=mistral-medium"`
}

// IsProduction reports whether the process runs in a production-like
// mode; it controls the Secure attribute on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// The signing secret has no sane default; refuse to start without it.
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
