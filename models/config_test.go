package models

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("STAYSEARCH_ADDRESS", ":9000")
	t.Setenv("STAYSEARCH_PAGE_SIZE", "8")
	t.Setenv("STAYSEARCH_SESSION_TTL", "2h")
	t.Setenv("STAYSEARCH_DEFER_GRID", "true")
	t.Setenv("STAYSEARCH_LISTING_SOURCE", "duckdb")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv failed: %v", err)
	}
	if cfg.Address != ":9000" || cfg.PageSize != 8 || cfg.SessionTTL != 2*time.Hour ||
		!cfg.DeferGrid || cfg.ListingSource != ListingSourceDuckDB {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.RateLimit != defaultRateLimit {
		t.Errorf("expected default rate limit, got %d", cfg.RateLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected a valid config, got %v", err)
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"page size not a number", "STAYSEARCH_PAGE_SIZE", "four"},
		{"bad ttl", "STAYSEARCH_SESSION_TTL", "forever"},
		{"bad defer flag", "STAYSEARCH_DEFER_GRID", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := configFromEnv(); err == nil {
				t.Errorf("expected an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty address", func(c *Config) { c.Address = "" }, true},
		{"unknown source", func(c *Config) { c.ListingSource = "csv" }, true},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, true},
		{"negative rate limit", func(c *Config) { c.RateLimit = -1 }, true},
		{"rate limit disabled", func(c *Config) { c.RateLimit = 0 }, false},
		{"redis without ttl", func(c *Config) { c.RedisAddr = "localhost:6379"; c.SessionTTL = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
