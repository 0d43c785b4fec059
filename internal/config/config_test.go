package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SERVICE_ENV", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_BASIC_AUTH_USER", "")
	t.Setenv("OTEL_BASIC_AUTH_PASS", "")

	cfg := Load()
	if cfg.LogLevel != "info" || cfg.ServiceEnv != "development" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.OTLPEndpoint != "" {
		t.Fatalf("expected OTLPEndpoint default empty, got %q", cfg.OTLPEndpoint)
	}

	// Custom values override defaults
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVICE_ENV", "production")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_BASIC_AUTH_USER", "user")
	t.Setenv("OTEL_BASIC_AUTH_PASS", "pass")

	cfg = Load()
	if cfg.LogLevel != "debug" || cfg.ServiceEnv != "production" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OTLPEndpoint != "http://localhost:4318" || cfg.OTLPAuthUser != "user" || cfg.OTLPAuthPass != "pass" {
		t.Fatalf("otel env overrides missing: %+v", cfg)
	}
}
