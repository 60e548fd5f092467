package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/upstream"
)

type Config struct {
	Port            string
	LogLevel        string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	AllowedOrigins  []string
	MockSeed        int64
}

func New() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Port:            valueOrDefault("PORT", "8080"),
		LogLevel:        os.Getenv("LOGLEVEL"),
		UpstreamBaseURL: valueOrDefault("UPSTREAM_BASE_URL", "http://localhost:8081"),
		UpstreamTimeout: durationOrDefault("UPSTREAM_TIMEOUT", upstream.DefaultTimeout),
		AllowedOrigins:  splitCSV(os.Getenv("ALLOWED_ORIGINS")),
		MockSeed:        int64OrDefault("MOCK_SEED", 0),
	}
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func int64OrDefault(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
