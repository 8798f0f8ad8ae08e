package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())

	// Sandbox config
	assert.Equal(t, 5*time.Second, cfg.Sandbox.Timeout)
	assert.Equal(t, time.Second, cfg.Sandbox.Grace)
	assert.Equal(t, 4, cfg.Sandbox.PoolSize)
	assert.Equal(t, 1024, cfg.Sandbox.MaxCallStack)
	assert.Equal(t, 1000, cfg.Sandbox.MaxOutputLines)
	assert.Equal(t, 65536, cfg.Sandbox.MaxSourceBytes)

	// Stream config
	assert.Equal(t, 300*time.Millisecond, cfg.Stream.Debounce)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)

	assert.NoError(t, cfg.Validate())
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                     "9000",
		"HOST":                     "127.0.0.1",
		"SANDBOX_TIMEOUT":          "2s",
		"SANDBOX_GRACE":            "250ms",
		"SANDBOX_POOL_SIZE":        "8",
		"SANDBOX_MAX_CALL_STACK":   "256",
		"SANDBOX_MAX_OUTPUT_LINES": "50",
		"SANDBOX_MAX_SOURCE_BYTES": "1024",
		"STREAM_DEBOUNCE":          "1s",
		"LOG_LEVEL":                "debug",
		"LOG_DEV":                  "true",
		"RATE_LIMIT_RPS":           "500",
		"RATE_LIMIT_BURST":         "1000",
		"RATE_LIMIT_ENABLED":       "false",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	assert.Equal(t, 2*time.Second, cfg.Sandbox.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Sandbox.Grace)
	assert.Equal(t, 8, cfg.Sandbox.PoolSize)
	assert.Equal(t, 256, cfg.Sandbox.MaxCallStack)
	assert.Equal(t, 50, cfg.Sandbox.MaxOutputLines)
	assert.Equal(t, 1024, cfg.Sandbox.MaxSourceBytes)
	assert.Equal(t, time.Second, cfg.Stream.Debounce)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"malformed duration", "SANDBOX_TIMEOUT", "soon"},
		{"zero timeout", "SANDBOX_TIMEOUT", "0s"},
		{"negative grace", "SANDBOX_GRACE", "-1s"},
		{"empty pool", "SANDBOX_POOL_SIZE", "0"},
		{"malformed bool", "LOG_DEV", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)

			// LoadOrDefault falls back
			assert.Equal(t, Default(), LoadOrDefault())
		})
	}
}

func TestSandboxRuntime(t *testing.T) {
	rc := Default().Sandbox.Runtime()
	assert.Equal(t, 5*time.Second, rc.Timeout)
	assert.Equal(t, time.Second, rc.Grace)
	assert.Equal(t, 1024, rc.MaxCallStackSize)
	assert.Equal(t, 1000, rc.MaxOutputLines)
	assert.True(t, rc.EnableConsole)
}
