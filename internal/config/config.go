package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/period"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Ledgr"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		// Driver selects the storage: postgres or memory. The memory store
		// keeps nothing across restarts.
		Driver   string `envconfig:"DB_DRIVER" default:"postgres"`
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"ledgr"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Redis struct {
		// Addr empty disables the report cache.
		Addr     string        `envconfig:"REDIS_ADDR" default:""`
		Password string        `envconfig:"REDIS_PASSWORD" default:""`
		DB       int           `envconfig:"REDIS_DB" default:"0"`
		TTL      time.Duration `envconfig:"REPORT_CACHE_TTL" default:"10m"`
	}

	Server struct {
		Timeout            time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CorsAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Period struct {
		CapitalLedger      string `envconfig:"PERIOD_CAPITAL_LEDGER" default:"Capital Account"`
		DepreciationLedger string `envconfig:"PERIOD_DEPRECIATION_LEDGER" default:"Depreciation"`
		DepreciationRate   string `envconfig:"PERIOD_DEPRECIATION_RATE" default:"10"`
		// AssetCategories is a comma separated list of ledger categories.
		AssetCategories []string `envconfig:"PERIOD_ASSET_CATEGORIES" default:"FIXED_ASSET"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// PeriodConfig converts the period settings for period.NewProcessor.
func (c *Config) PeriodConfig() (period.Config, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.Period.DepreciationRate))
	if err != nil {
		return period.Config{}, fmt.Errorf("parsing PERIOD_DEPRECIATION_RATE: %w", err)
	}

	cfg := period.Config{
		CapitalLedger:      c.Period.CapitalLedger,
		DepreciationLedger: c.Period.DepreciationLedger,
		DepreciationRate:   rate,
	}

	for _, raw := range c.Period.AssetCategories {
		category := ledger.Category(strings.ToUpper(strings.TrimSpace(raw)))
		if !category.Valid() {
			return period.Config{}, fmt.Errorf("PERIOD_ASSET_CATEGORIES: unknown ledger category %q", raw)
		}

		cfg.AssetCategories = append(cfg.AssetCategories, category)
	}

	return cfg, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, cfg.DB.Driver)
	}

	return &cfg, nil
}
