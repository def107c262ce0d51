package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration, loaded from environment variables.
type Config struct {
	Port       string
	LogLevel   string
	RedisAddr  string // empty means the in-process cache
	ReportsDir string
	OpenAIKey  string
	RateLimit  int
	RateWindow time.Duration
}

// NewConfig loads configuration from environment variables, applying
// defaults where unset.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		ReportsDir: getEnv("REPORTS_DIR", "reports"),
		OpenAIKey:  getEnv("OPENAI_API_KEY", ""),
	}

	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT", "5"))
	if err != nil || rateLimit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %q", getEnv("RATE_LIMIT", "5"))
	}
	cfg.RateLimit = rateLimit

	rateWindow, err := time.ParseDuration(getEnv("RATE_WINDOW", "1m"))
	if err != nil || rateWindow <= 0 {
		return nil, fmt.Errorf("invalid RATE_WINDOW: %q", getEnv("RATE_WINDOW", "1m"))
	}
	cfg.RateWindow = rateWindow

	if cfg.ReportsDir == "" {
		return nil, fmt.Errorf("REPORTS_DIR must not be empty")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
