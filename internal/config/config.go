package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	CatalogSeed     int64
	CatalogPasses   int
	CatalogCap      int
	PaymentDelay    time.Duration
	AssistantDelay  time.Duration
	SessionTTL      time.Duration
	JWTSecret       string
	CORSOrigins     []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// CATALOG_SEED=0 means seed from the clock, keeping the per-load variety of
// the generated catalog.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CatalogSeed:     envInt64("CATALOG_SEED", 0),
		CatalogPasses:   envInt("CATALOG_PASSES", 50),
		CatalogCap:      envInt("CATALOG_CAP", 1000),
		PaymentDelay:    envMillis("PAYMENT_DELAY_MS", 2*time.Second),
		AssistantDelay:  envMillis("ASSISTANT_DELAY_MS", time.Second),
		SessionTTL:      envMinutes("SESSION_TTL_MINUTES", time.Hour),
		JWTSecret:       envOrDefault("JWT_SECRET", "shopspark-dev-secret"),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"*"}),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envMillis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		ms, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func envMinutes(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		minutes, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return def
}

func envList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
