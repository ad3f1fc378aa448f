package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// APIKeyEnv names the environment variable holding the Visual Crossing API key.
const APIKeyEnv = "VISUAL_CROSSING_API_KEY"

type AppConfig struct {
	// Upstream provider.
	BaseURL         string
	UnitGroup       string
	DefaultLocation string
	HTTPTimeout     time.Duration // 0 = no client timeout
	MaxRetries      int           // 0 = one attempt per fetch

	// Outbound rate limiting (0 rps = disabled).
	RateLimitRPS   float64
	RateLimitBurst int

	// RefreshInterval re-fetches the displayed location periodically (0 = disabled).
	RefreshInterval time.Duration

	// In-memory store retention.
	StoreMaxHistory int           // max number of snapshots per location (0 = unlimited)
	StoreMaxAge     time.Duration // max age of snapshots (0 = unlimited)

	// Display.
	TextFadeDelay  time.Duration
	VideoFadeDelay time.Duration
	VideoBasePath  string

	Port string
}

// Load reads configuration from environment with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.BaseURL = getenvDefault("VISUAL_CROSSING_BASE_URL", "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline")
	cfg.UnitGroup = getenvDefault("UNIT_GROUP", "uk")
	cfg.DefaultLocation = getenvDefault("DEFAULT_LOCATION", "London")
	cfg.Port = getenvDefault("PORT", "8080")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "0s"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "0s"); err != nil {
		return nil, err
	}
	if cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", "24h"); err != nil {
		return nil, err
	}
	if cfg.TextFadeDelay, err = getenvDuration("TEXT_FADE_DELAY", "150ms"); err != nil {
		return nil, err
	}
	if cfg.VideoFadeDelay, err = getenvDuration("VIDEO_FADE_DELAY", "300ms"); err != nil {
		return nil, err
	}

	cfg.MaxRetries = getenvInt("FETCH_MAX_RETRIES", 0)
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("invalid FETCH_MAX_RETRIES: must not be negative")
	}

	// Visual Crossing's free tier is generous per second; this mostly guards
	// against a stuck client hammering the daily quota.
	rps, err := strconv.ParseFloat(getenvDefault("RATE_LIMIT_RPS", "1"), 64)
	if err != nil || rps < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %q", os.Getenv("RATE_LIMIT_RPS"))
	}
	cfg.RateLimitRPS = rps
	cfg.RateLimitBurst = getenvInt("RATE_LIMIT_BURST", 5)

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96)
	cfg.VideoBasePath = getenvDefault("VIDEO_BASE_PATH", "/videos")

	return cfg, nil
}

// APIKey reads the provider key from the environment. It is called per request
// so a rotated key takes effect without a restart.
func APIKey() string {
	return os.Getenv(APIKeyEnv)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}
