package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
	SourceAPI      = "api"
)

type Config struct {
	TelegramToken  string  `env:"TELEGRAM_TOKEN"`
	AdminIDs       []int64 `env:"ADMIN_IDS" envSeparator:","`
	AuditChannelID int64   `env:"AUDIT_CHANNEL_ID"`
	LogLevel       string  `env:"LOG_LEVEL" envDefault:"info"`

	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"static"`

	Database Database `envPrefix:"DB_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	API      API      `envPrefix:"CATALOG_API_"`
}

type Database struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER"`
	Password        string        `env:"PASSWORD"`
	Name            string        `env:"NAME"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"2m"`
	ConnectTimeout  time.Duration `env:"CONNECT_TIMEOUT" envDefault:"2m"`
}

// Redis caches the catalog in front of the configured source. Caching is off
// when Addr is empty.
type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"1h"`
}

type API struct {
	BaseURL string        `env:"BASE_URL"`
	Key     string        `env:"KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields the selected catalog source depends on.
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case SourceStatic:
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			return fmt.Errorf("catalog source %q requires DB_HOST, DB_USER and DB_NAME", c.CatalogSource)
		}
	case SourceAPI:
		if c.API.BaseURL == "" {
			return fmt.Errorf("catalog source %q requires CATALOG_API_BASE_URL", c.CatalogSource)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.CatalogSource)
	}
	return nil
}

func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
