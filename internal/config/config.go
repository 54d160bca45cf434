// Package config loads client and dashboard settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит настройки клиента и дашборда.
// Флаги командной строки переопределяют значения из окружения.
type Config struct {
	APIURL         string        `env:"SERVERMANAGER_API_URL" envDefault:"http://localhost:8080/api/server/"`
	ClientDB       string        `env:"SERVERMANAGER_CLIENT_DB" envDefault:"servermanager-client.db"`
	ListenAddr     string        `env:"SERVERMANAGER_LISTEN_ADDR" envDefault:":8090"`
	LogLevel       string        `env:"SERVERMANAGER_LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"SERVERMANAGER_LOG_FORMAT" envDefault:"text"`
	OTELEndpoint   string        `env:"SERVERMANAGER_OTEL_ENDPOINT"`
	RequestTimeout time.Duration `env:"SERVERMANAGER_REQUEST_TIMEOUT" envDefault:"30s"`
	RateLimit      float64       `env:"SERVERMANAGER_RATE_LIMIT" envDefault:"10"` // запросов в секунду на IP
	RateBurst      int           `env:"SERVERMANAGER_RATE_BURST" envDefault:"20"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env parser cannot.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q, use text or json", c.LogFormat)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("rate limit and burst must be positive")
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
