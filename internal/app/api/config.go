package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hungryhub/food-order-api/internal/shared/retry"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port           string
	PostgresDSN    string
	RunMigrations  bool
	UserServiceURL string
	UserLookup     retry.Config
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:           envDefault("PORT", "8080"),
		PostgresDSN:    strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RunMigrations:  isTruthy(envDefault("RUN_MIGRATIONS", "true")),
		UserServiceURL: strings.TrimSpace(os.Getenv("USER_SERVICE_URL")),
		UserLookup:     retry.DefaultConfig(),
	}
	if raw := strings.TrimSpace(os.Getenv("USER_LOOKUP_RETRIES")); raw != "" {
		attempts, err := strconv.Atoi(raw)
		if err != nil || attempts <= 0 {
			return Config{}, fmt.Errorf("USER_LOOKUP_RETRIES must be a positive integer")
		}
		cfg.UserLookup.Attempts = attempts
	}
	if raw := strings.TrimSpace(os.Getenv("USER_LOOKUP_RETRY_DELAY_MS")); raw != "" {
		millis, err := strconv.Atoi(raw)
		if err != nil || millis < 0 {
			return Config{}, fmt.Errorf("USER_LOOKUP_RETRY_DELAY_MS must be a non-negative integer")
		}
		cfg.UserLookup.Delay = time.Duration(millis) * time.Millisecond
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
