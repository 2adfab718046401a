package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything read from the process environment.
type Config struct {
	RedisURL     string
	RedisToken   string
	ResendAPIKey string
	Port         int
}

const defaultPort = 8080

// Load reads and validates the environment. Credentials pasted into
// dashboards tend to pick up stray whitespace, so values are trimmed and
// then rejected if whitespace remains inside them.
func Load() (*Config, error) {
	cfg := &Config{
		RedisURL:     strings.TrimSpace(os.Getenv("REDIS_URL")),
		RedisToken:   strings.TrimSpace(os.Getenv("REDIS_TOKEN")),
		ResendAPIKey: strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		Port:         defaultPort,
	}

	if cfg.RedisURL == "" || cfg.RedisToken == "" {
		return nil, fmt.Errorf("missing redis credentials, check REDIS_URL and REDIS_TOKEN")
	}
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("missing RESEND_API_KEY")
	}

	for name, value := range map[string]string{
		"REDIS_URL":      cfg.RedisURL,
		"REDIS_TOKEN":    cfg.RedisToken,
		"RESEND_API_KEY": cfg.ResendAPIKey,
	} {
		if containsWhitespace(value) {
			return nil, fmt.Errorf("%s contains whitespace characters", name)
		}
	}

	if !strings.HasPrefix(cfg.RedisURL, "rediss://") {
		return nil, fmt.Errorf("invalid REDIS_URL, must start with rediss://")
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}

	return cfg, nil
}

func containsWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t\n\r")
}
