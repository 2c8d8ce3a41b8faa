package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port             string
	BackendBaseURL   string
	BackendTimeout   time.Duration
	RateLimitSearch  RateLimitConfig
	SessionTTL       time.Duration
	CopiedResetDelay time.Duration
	EmailVerifyMX    bool
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		BackendBaseURL:   getEnv("BACKEND_BASE_URL", "http://backend:8000"),
		BackendTimeout:   parseDuration(getEnv("BACKEND_TIMEOUT", "30s"), 30*time.Second),
		SessionTTL:       parseDuration(getEnv("SESSION_TTL", "30m"), 30*time.Minute),
		CopiedResetDelay: parseDuration(getEnv("COPIED_RESET_DELAY", "2s"), 2*time.Second),
		EmailVerifyMX:    parseBool(getEnv("EMAIL_VERIFY_MX", "false")),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SEARCH", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SEARCH value: %w", err)
	}
	cfg.RateLimitSearch = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return fallback
	}
	return d
}

func parseBool(input string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(input))
	if err != nil {
		return false
	}
	return b
}
