package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every session token. Required: startup fails fast
	// rather than deferring the failure to the first login.
	JWTSecret string `env:"JWT_SECRET, required"`

	// ContactInbox receives a notification for each contact submission.
	ContactInbox string `env:"CONTACT_INBOX"`

	// CompanyName is stamped into rendered invoice documents.
	CompanyName string `env:"COMPANY_NAME, default=Atelier Works"`

	SQLite SQLiteConfig
	Redis  RedisConfig
	SMTP   SMTPConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=ffe_portal.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@atelierworks.example.com"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
