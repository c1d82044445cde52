package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	CatalogPath string
	RulesPath   string
	LogLevel    string
	LogFormat   string
	Currency    string
}

// Load reads configuration from environment variables and an optional .env
// file. Every setting has a default, so an empty environment is valid.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		CatalogPath: valueOrDefault(k.String("KASIR_CATALOG_PATH"), "config/products.yml"),
		RulesPath:   valueOrDefault(k.String("KASIR_RULES_PATH"), "config/pricing_rules.yml"),
		LogLevel:    valueOrDefault(k.String("KASIR_LOG_LEVEL"), "info"),
		LogFormat:   valueOrDefault(k.String("KASIR_LOG_FORMAT"), "console"),
		Currency:    valueOrDefault(k.String("KASIR_CURRENCY"), "£"),
	}
	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

// MustLoad behaves like Load but panics on error. Useful for tests.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
