package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr       = ":8080"
	defaultBackendTimeout   = "10s"
	defaultSessionTTL       = "24h"
	defaultCleanupInterval  = "1h"
	defaultWorkingDaysLimit = "30"
	defaultDatabaseURL      = "deskbooker.db"
	defaultJWTSecret        = "change-me-jwt-secret"
)

type Config struct {
	AppEnv string

	ListenAddr string

	// Backend is the desk-booking REST service all booking state lives in.
	BackendBaseURL      string
	BackendServiceToken string
	BackendTimeout      time.Duration

	DatabaseURL string

	JWTSecret  string
	SessionTTL time.Duration

	SessionCleanupInterval time.Duration

	// WorkingDaysLimit bounds how many working days ahead a booking may be
	// placed.
	WorkingDaysLimit int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.BackendBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("BACKEND_URL")), "/")
	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_URL is empty")
	}
	cfg.BackendServiceToken = strings.TrimSpace(os.Getenv("BACKEND_SERVICE_TOKEN"))

	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", defaultJWTSecret)
	if cfg.AppEnv != "dev" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set outside dev")
	}

	var err error
	if cfg.BackendTimeout, err = parseDurationEnv("BACKEND_TIMEOUT", defaultBackendTimeout); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.SessionCleanupInterval, err = parseDurationEnv("SESSION_CLEANUP_INTERVAL", defaultCleanupInterval); err != nil {
		return nil, err
	}
	if cfg.WorkingDaysLimit, err = parseIntEnv("WORKING_DAYS_LIMIT", defaultWorkingDaysLimit); err != nil {
		return nil, err
	}
	if cfg.WorkingDaysLimit <= 0 {
		return nil, fmt.Errorf("WORKING_DAYS_LIMIT must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	v := getEnv(key, fallback)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	v := getEnv(key, fallback)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}
