// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is fixed at startup. Each binary reads the fields it needs.
type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBPath        string
	DBAutoMigrate bool

	Port       string
	FilterMode string

	SeedEnabled bool
	AMQPURL     string

	GatewayURL   string
	FetchTimeout time.Duration
	DisplayTZ    string
	DiscardStale bool
}

// LoadDotEnv loads a .env file when one exists. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}
}

// Load reads the environment and returns a Config with defaults applied.
func Load() (*Config, error) {
	cfg := &Config{
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "paris"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "customers.db"),
		Port:       getEnv("PORT", "3001"),
		FilterMode: getEnv("FILTER_MODE", "location-precedence"),
		AMQPURL:    os.Getenv("AMQP_URL"),
		GatewayURL: getEnv("GATEWAY_URL", "http://localhost:3001"),
		DisplayTZ:  getEnv("DISPLAY_TZ", "Local"),
	}

	var err error
	if cfg.DBAutoMigrate, err = getEnvBool("DB_AUTO_MIGRATE", true); err != nil {
		return nil, err
	}
	if cfg.SeedEnabled, err = getEnvBool("SEED_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.DiscardStale, err = getEnvBool("DISCARD_STALE", false); err != nil {
		return nil, err
	}

	cfg.FetchTimeout = 10 * time.Second
	if v, ok := os.LookupEnv("FETCH_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("FETCH_TIMEOUT has invalid duration %q: %w", v, err)
		}
		cfg.FetchTimeout = d
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", cfg.DBDriver)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.DBPath)
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Location resolves DisplayTZ. "Local" and "" map to the process zone.
func (c *Config) Location() (*time.Location, error) {
	if c.DisplayTZ == "" || c.DisplayTZ == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.DisplayTZ)
	if err != nil {
		return nil, fmt.Errorf("DISPLAY_TZ %q: %w", c.DisplayTZ, err)
	}
	return loc, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s has invalid boolean %q: %w", key, v, err)
	}
	return b, nil
}
