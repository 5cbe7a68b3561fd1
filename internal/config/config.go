package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App        AppConfig
	Redis      RedisConfig
	Livestream LivestreamConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, test, production
	Port        string
	Version     string
}

// RedisConfig selects the database explicitly. Development and test
// deployments point at different DB numbers through REDIS_DB instead of
// branching on the environment inside the gateway.
type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// LivestreamConfig points at the remote accounts API. The base URL is
// overridable so tests can target a local stub server.
type LivestreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Director API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Livestream: LivestreamConfig{
			BaseURL: getEnv("LIVESTREAM_API_URL", "https://api.new.livestream.com"),
			Timeout: time.Duration(getEnvInt("LIVESTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the loaded config is usable.
func (c *Config) Validate() error {
	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST must not be empty")
	}
	if c.Redis.DB < 0 || c.Redis.DB > 15 {
		return fmt.Errorf("REDIS_DB must be between 0 and 15, got %d", c.Redis.DB)
	}
	if c.Livestream.BaseURL == "" {
		return fmt.Errorf("LIVESTREAM_API_URL must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
