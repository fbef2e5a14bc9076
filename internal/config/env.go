package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	Addr             string          `env:"WELLCALC_ADDR"              envDefault:":8080"`
	Verbose          bool            `env:"WELLCALC_VERBOSE"`
	MetricsNamespace string          `env:"WELLCALC_METRICS_NAMESPACE" envDefault:"wellcalc"`
	DaysPerMonth     decimal.Decimal `env:"WELLCALC_DAYS_PER_MONTH"    envDefault:"30"`
	ReadTimeout      time.Duration   `env:"WELLCALC_READ_TIMEOUT"      envDefault:"5s"`
	WriteTimeout     time.Duration   `env:"WELLCALC_WRITE_TIMEOUT"     envDefault:"10s"`
	ShutdownTimeout  time.Duration   `env:"WELLCALC_SHUTDOWN_TIMEOUT"  envDefault:"10s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from the given files (".env" when none are given)
// without overriding the environment. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// LoadServerConfig reads .env files and then the environment into a ServerConfig
func LoadServerConfig(dotenvFiles ...string) (ServerConfig, error) {
	if err := LoadDotEnv(dotenvFiles...); err != nil {
		return ServerConfig{}, err
	}
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if !cfg.DaysPerMonth.IsPositive() {
		return ServerConfig{}, fmt.Errorf("WELLCALC_DAYS_PER_MONTH must be positive, got %s", cfg.DaysPerMonth.String())
	}
	return cfg, nil
}
