package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"WELLCALC_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("WELLCALC_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "wellcalc", cfg.MetricsNamespace)
	assert.True(t, cfg.DaysPerMonth.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadServerConfig_FromEnvironment(t *testing.T) {
	t.Setenv("WELLCALC_ADDR", "127.0.0.1:9090")
	t.Setenv("WELLCALC_DAYS_PER_MONTH", "30.4")
	t.Setenv("WELLCALC_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.True(t, cfg.DaysPerMonth.Equal(decimal.RequireFromString("30.4")))
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadServerConfig_DotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("WELLCALC_ADDR=:7000\nWELLCALC_METRICS_NAMESPACE=wells\n"), 0o644))
	t.Setenv("WELLCALC_ADDR", ":6000")
	// t.Setenv restores the variable on cleanup; register the one .env will set
	t.Setenv("WELLCALC_METRICS_NAMESPACE", "")
	require.NoError(t, os.Unsetenv("WELLCALC_METRICS_NAMESPACE"))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.Addr)
	assert.Equal(t, "wells", cfg.MetricsNamespace)
}

func TestLoadServerConfig_InvalidDays(t *testing.T) {
	t.Setenv("WELLCALC_DAYS_PER_MONTH", "0")

	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WELLCALC_DAYS_PER_MONTH must be positive")
}

func TestLoadServerConfig_BadDuration(t *testing.T) {
	t.Setenv("WELLCALC_READ_TIMEOUT", "soon")

	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
