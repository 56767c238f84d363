// Package config loads application configuration from environment variables.
// All variables use the SILABO_ prefix. A .env file in the working directory
// is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Cache       CacheConfig
	AI          AIConfig
	Entitlement EntitlementConfig
	App         AppConfig
	Log         LogConfig
	PresetsPath string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// CacheConfig holds Redis connection settings. An empty URL runs the
// application on in-memory state only.
type CacheConfig struct {
	URL string
}

// AIConfig holds Google Gemini provider settings.
type AIConfig struct {
	Google         GoogleConfig
	Model          string
	TimeoutSeconds int
}

// GoogleConfig holds Google Gemini provider settings.
type GoogleConfig struct {
	APIKey string
}

// EntitlementConfig holds free-tier settings.
type EntitlementConfig struct {
	FreeLimit int
	// DevUnlockHash is an optional bcrypt hash of the development unlock
	// token. Empty disables the dev unlock path entirely.
	DevUnlockHash string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	// BaseURL is where payment-return redirects land after their query
	// flags are processed.
	BaseURL string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with SILABO_ prefix.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("SILABO_SERVER_PORT", 8080),
			Host: envStr("SILABO_SERVER_HOST", "0.0.0.0"),
		},
		Cache: CacheConfig{
			URL: envStr("SILABO_CACHE_URL", ""),
		},
		AI: AIConfig{
			Google: GoogleConfig{
				APIKey: envStr("SILABO_AI_GOOGLE_API_KEY", ""),
			},
			Model:          envStr("SILABO_AI_MODEL", "gemini-2.5-flash"),
			TimeoutSeconds: envInt("SILABO_AI_TIMEOUT", 120),
		},
		Entitlement: EntitlementConfig{
			FreeLimit:     envInt("SILABO_FREE_LIMIT", 3),
			DevUnlockHash: envStr("SILABO_DEV_UNLOCK_HASH", ""),
		},
		App: AppConfig{
			BaseURL: envStr("SILABO_APP_BASE_URL", "/"),
		},
		Log: LogConfig{
			Level:  envStr("SILABO_LOG_LEVEL", "info"),
			Format: envStr("SILABO_LOG_FORMAT", "json"),
		},
		PresetsPath: envStr("SILABO_PRESETS_PATH", "./presets"),
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.AI.Google.APIKey == "" {
		return fmt.Errorf("SILABO_AI_GOOGLE_API_KEY is required")
	}

	if c.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("SILABO_AI_TIMEOUT must be positive, got %d", c.AI.TimeoutSeconds)
	}

	if c.Entitlement.FreeLimit < 0 {
		return fmt.Errorf("SILABO_FREE_LIMIT must not be negative, got %d", c.Entitlement.FreeLimit)
	}

	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
