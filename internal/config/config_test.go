package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kasir/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KASIR_CATALOG_PATH", "")
	t.Setenv("KASIR_RULES_PATH", "")
	t.Setenv("KASIR_LOG_LEVEL", "")
	t.Setenv("KASIR_LOG_FORMAT", "")
	t.Setenv("KASIR_CURRENCY", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "config/products.yml", cfg.CatalogPath)
	require.Equal(t, "config/pricing_rules.yml", cfg.RulesPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "£", cfg.Currency)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KASIR_CATALOG_PATH", "/etc/kasir/products.yml")
	t.Setenv("KASIR_RULES_PATH", "/etc/kasir/rules.yml")
	t.Setenv("KASIR_LOG_LEVEL", "debug")
	t.Setenv("KASIR_LOG_FORMAT", "json")
	t.Setenv("KASIR_CURRENCY", "$")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "/etc/kasir/products.yml", cfg.CatalogPath)
	require.Equal(t, "/etc/kasir/rules.yml", cfg.RulesPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "$", cfg.Currency)
}
