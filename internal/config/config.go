package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	APIPort  string
	LogLevel string
	Search   SearchConfig
	Catalog  CatalogConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

// SearchConfig controls how the search form talks to the search endpoint
// and how prices are printed in the results table.
type SearchConfig struct {
	BaseURL     string
	PriceLocale string
	PriceSuffix string
}

type CatalogConfig struct {
	CacheTTL time.Duration
}

// Load reads an optional .env file and builds the config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system env vars")
	}

	apiPort := getEnv("API_PORT", "8080")

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "cars"),
			User:     getEnv("DB_USER", "cars"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		APIPort:  apiPort,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Search: SearchConfig{
			BaseURL:     strings.TrimRight(getEnv("SEARCH_BASE_URL", "http://localhost:"+apiPort), "/"),
			PriceLocale: getEnv("PRICE_LOCALE", "en-US"),
			PriceSuffix: getEnv("PRICE_SUFFIX", "thousand RUB"),
		},
		Catalog: CatalogConfig{
			CacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
	}
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
