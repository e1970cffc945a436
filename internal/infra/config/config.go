package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	CarsSourceFile  = "file"
	CarsSourceMongo = "mongo"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env          string        `envconfig:"APP_ENV" default:"dev"`
	LogFormat    string        `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	DataDir      string        `envconfig:"DATA_DIR" default:"database"`
	CarsSource   string        `envconfig:"CARS_SOURCE" default:"file"`
	MongoURI     string        `envconfig:"MONGO_URI"`
	MongoDB      string        `envconfig:"MONGO_DB" default:"rentals"`
	MongoTimeout time.Duration `envconfig:"MONGO_TIMEOUT" default:"10s"`
	TaxTablePath string        `envconfig:"TAX_TABLE_PATH"`
	Locale       string        `envconfig:"LOCALE" default:"pt-BR"`
	Timezone     string        `envconfig:"TIMEZONE" default:"America/Sao_Paulo"`
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	cfg.CarsSource = strings.ToLower(strings.TrimSpace(cfg.CarsSource))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.CarsSource {
	case CarsSourceFile:
	case CarsSourceMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when CARS_SOURCE=%s", CarsSourceMongo)
		}
	default:
		return fmt.Errorf("invalid CARS_SOURCE %q", c.CarsSource)
	}
	switch c.LogFormat {
	case "pretty", "json", "text":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	if c.MongoTimeout <= 0 {
		return fmt.Errorf("MONGO_TIMEOUT must be positive")
	}
	return nil
}

// Location resolves Timezone; an empty value means UTC.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
