package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Backend API configuration
	API APIConfig

	// Local session storage configuration
	Session SessionConfig

	// Logging configuration
	Log LogConfig
}

// APIConfig holds StockAI backend API configuration
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	DefaultModel   string
	DefaultPeriod  string
}

// SessionConfig holds local session store configuration
type SessionConfig struct {
	DataDir    string // defaults to ~/.stockai when empty
	Passphrase string // optional; a built-in default is used when empty
}

// LogConfig holds logging configuration
type LogConfig struct {
	Production bool
	Level      string // debug, info, warn, error
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:        getEnvString("STOCKAI_API_URL", "http://localhost:5000"),
			TimeoutSeconds: getEnvInt("STOCKAI_HTTP_TIMEOUT_SECONDS", 30),
			DefaultModel:   getEnvString("STOCKAI_DEFAULT_MODEL", "RandomForest"),
			DefaultPeriod:  getEnvString("STOCKAI_DEFAULT_PERIOD", "1y"),
		},
		Session: SessionConfig{
			DataDir:    os.Getenv("STOCKAI_DATA_DIR"),
			Passphrase: os.Getenv("STOCKAI_SESSION_PASSPHRASE"),
		},
		Log: LogConfig{
			Production: getEnvBool("STOCKAI_LOG_JSON", false),
			Level:      getEnvString("STOCKAI_LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("STOCKAI_API_URL must not be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("STOCKAI_API_URL must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("STOCKAI_HTTP_TIMEOUT_SECONDS must be positive, got %d", c.API.TimeoutSeconds)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("STOCKAI_LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}

func getEnvString(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// NewTestConfig creates a Config with default values for testing
func NewTestConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 30,
			DefaultModel:   "RandomForest",
			DefaultPeriod:  "1y",
		},
		Session: SessionConfig{},
		Log: LogConfig{
			Production: false,
			Level:      "info",
		},
	}
}
