// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/dsaviz/internal/sandbox"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Sandbox   SandboxConfig
	Stream    StreamConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// SandboxConfig holds script execution limits.
type SandboxConfig struct {
	Timeout        time.Duration `envconfig:"SANDBOX_TIMEOUT" default:"5s"`
	Grace          time.Duration `envconfig:"SANDBOX_GRACE" default:"1s"`
	PoolSize       int           `envconfig:"SANDBOX_POOL_SIZE" default:"4"`
	MaxCallStack   int           `envconfig:"SANDBOX_MAX_CALL_STACK" default:"1024"`
	MaxOutputLines int           `envconfig:"SANDBOX_MAX_OUTPUT_LINES" default:"1000"`
	MaxSourceBytes int           `envconfig:"SANDBOX_MAX_SOURCE_BYTES" default:"65536"`
}

// StreamConfig holds live stream configuration.
type StreamConfig struct {
	Debounce time.Duration `envconfig:"STREAM_DEBOUNCE" default:"300ms"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"40"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Sandbox: SandboxConfig{
			Timeout:        5 * time.Second,
			Grace:          time.Second,
			PoolSize:       4,
			MaxCallStack:   1024,
			MaxOutputLines: 1000,
			MaxSourceBytes: 64 * 1024,
		},
		Stream: StreamConfig{
			Debounce: 300 * time.Millisecond,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
			Enabled:           true,
		},
	}
}

// Validate rejects limits the sandbox cannot run with.
func (c *Config) Validate() error {
	if c.Sandbox.Timeout <= 0 {
		return fmt.Errorf("invalid config: SANDBOX_TIMEOUT must be positive, got %s", c.Sandbox.Timeout)
	}
	if c.Sandbox.Grace < 0 {
		return fmt.Errorf("invalid config: SANDBOX_GRACE must not be negative, got %s", c.Sandbox.Grace)
	}
	if c.Sandbox.PoolSize <= 0 {
		return fmt.Errorf("invalid config: SANDBOX_POOL_SIZE must be positive, got %d", c.Sandbox.PoolSize)
	}
	return nil
}

// Runtime converts the sandbox section into runtime limits.
func (s SandboxConfig) Runtime() sandbox.Config {
	return sandbox.Config{
		Timeout:          s.Timeout,
		Grace:            s.Grace,
		MaxCallStackSize: s.MaxCallStack,
		MaxOutputLines:   s.MaxOutputLines,
		EnableConsole:    true,
	}
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
