package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime configuration for the booking server.
type Config struct {
	Server  ServerConfig
	Cache   CacheConfig
	Catalog CatalogConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port     string
	LogLevel string
}

type CacheConfig struct {
	Enabled   bool
	RedisHost string
	RedisPort string
	RedisTTL  time.Duration
}

type CatalogConfig struct {
	Latency time.Duration
}

type BookingConfig struct {
	SubmitDelay time.Duration
	BaggageFee  float64
}

// Load reads configuration from the environment, with a .env file for
// local development.
func Load(logger *logrus.Logger) Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment variables")
	}

	return Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "8080"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Enabled:   getEnvBool("CACHE_ENABLED", true),
			RedisHost: getEnv("REDIS_HOST", "localhost"),
			RedisPort: getEnv("REDIS_PORT", "6379"),
			RedisTTL:  getEnvDuration("REDIS_TTL", 5*time.Minute),
		},
		Catalog: CatalogConfig{
			Latency: getEnvDuration("CATALOG_LATENCY", 75*time.Millisecond),
		},
		Booking: BookingConfig{
			SubmitDelay: getEnvDuration("BOOKING_SUBMIT_DELAY", 2*time.Second),
			BaggageFee:  getEnvFloat("BOOKING_BAGGAGE_FEE", 1500),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
