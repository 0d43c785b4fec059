package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel   string
	ServiceEnv string

	// OpenTelemetry exporter configuration
	OTLPEndpoint string
	OTLPAuthUser string
	OTLPAuthPass string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		ServiceEnv: getEnv("SERVICE_ENV", "development"),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPAuthUser: getEnv("OTEL_BASIC_AUTH_USER", ""),
		OTLPAuthPass: getEnv("OTEL_BASIC_AUTH_PASS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
