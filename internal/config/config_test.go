package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamalneel/agrawal-estate-sub000/internal/projection"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0, cfg.ScanWorkers)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, projection.DefaultReferenceDate, cfg.ReferenceDate)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("NRANK_LOG_LEVEL", "debug")
	t.Setenv("NRANK_PORT", "9090")
	t.Setenv("NRANK_SCAN_WORKERS", "4")
	t.Setenv("NRANK_DEV_MODE", "true")
	t.Setenv("NRANK_REFERENCE_DATE", "2024-03-31")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 4, cfg.ScanWorkers)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), cfg.ReferenceDate)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("NRANK_PORT", "not-a-port")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad reference date", func(t *testing.T) {
		t.Setenv("NRANK_REFERENCE_DATE", "31/03/2025")
		_, err := Load()
		assert.Error(t, err)
	})
}
