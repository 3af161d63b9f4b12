package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	StoreBackendSQLite = "sqlite"
	StoreBackendMemory = "memory"
)

// Config keeps runtime settings for the server. Timezone is explicit: every
// "due today" decision is made in Location, never in the host's ambient zone.
type Config struct {
	Port           string
	DatabasePath   string
	SecretKey      string
	StoreBackend   string
	Location       *time.Location
	CookieSecure   bool
	WeatherGeoURL  string
	WeatherDataURL string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabasePath:   getEnv("DB_PATH", filepath.Join("data", "farmstead.db")),
		SecretKey:      getEnv("SECRET_KEY", "change_me_in_production"),
		StoreBackend:   strings.ToLower(getEnv("STORE", StoreBackendSQLite)),
		CookieSecure:   parseBool(os.Getenv("COOKIE_SECURE")),
		WeatherGeoURL:  getEnv("WEATHER_GEOCODING_URL", "https://geocoding-api.open-meteo.com"),
		WeatherDataURL: getEnv("WEATHER_FORECAST_URL", "https://api.open-meteo.com"),
	}

	if cfg.StoreBackend != StoreBackendSQLite && cfg.StoreBackend != StoreBackendMemory {
		return cfg, fmt.Errorf("unknown STORE backend %q", cfg.StoreBackend)
	}

	location, err := time.LoadLocation(getEnv("TZ", "UTC"))
	if err != nil {
		return cfg, fmt.Errorf("invalid TZ: %w", err)
	}
	cfg.Location = location

	return cfg, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
