package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "roulette")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "roulette_test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, RunModeOnce, cfg.RunMode)
	assert.Equal(t, DefaultMinLevel, cfg.MinLevel)
	assert.Equal(t, DefaultMinFairPlay, cfg.MinFairPlay)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_LoopModeRequiresAPIKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RUN_MODE", "loop")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")

	t.Setenv("API_KEY", "ops-key")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, RunModeLoop, cfg.RunMode)
}

func TestLoad_RejectsUnknownRunMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RUN_MODE", "sometimes")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "roulette",
	}
	assert.Equal(t, "postgres://u:p@db:5433/roulette?sslmode=disable", cfg.GetDBConnString())
}

func TestValidateEnv_Missing(t *testing.T) {
	for _, v := range RequiredEnvVars {
		t.Setenv(v, "")
	}

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
}

func TestValidateEnv_AllSet(t *testing.T) {
	setRequiredEnv(t)
	assert.NoError(t, ValidateEnv())
}
