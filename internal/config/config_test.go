package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Curator.Provider != "gemini" {
		t.Errorf("Curator.Provider = %q, want gemini", cfg.Curator.Provider)
	}
	if cfg.Spotlight.CacheTTL != 30*time.Minute {
		t.Errorf("Spotlight.CacheTTL = %v, want 30m", cfg.Spotlight.CacheTTL)
	}
	if cfg.Places.MaxResultCount != 20 {
		t.Errorf("Places.MaxResultCount = %d, want 20", cfg.Places.MaxResultCount)
	}
	if cfg.Breaker.MinRequests != 10 {
		t.Errorf("Breaker.MinRequests = %d, want 10", cfg.Breaker.MinRequests)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_URL", "postgres://roam@localhost/roam")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("ROAM_PLACES_TIMEOUT", "5s")
	t.Setenv("ROAM_CURATOR_MAXRETRIES", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://roam@localhost/roam" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Curator.GeminiAPIKey != "gem-key" {
		t.Errorf("Curator.GeminiAPIKey = %q, want gem-key", cfg.Curator.GeminiAPIKey)
	}
	if cfg.Places.Timeout != 5*time.Second {
		t.Errorf("Places.Timeout = %v, want 5s", cfg.Places.Timeout)
	}
	if cfg.Curator.MaxRetries != 4 {
		t.Errorf("Curator.MaxRetries = %d, want 4", cfg.Curator.MaxRetries)
	}
	if got := cfg.GetServerAddr(); got != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{URL: "postgres://x"},
			Auth:     AuthConfig{JWTSecret: "secret"},
			Places:   PlacesConfig{APIKey: "places"},
			Curator:  CuratorConfig{Provider: "gemini", GeminiAPIKey: "gem"},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid gemini",
			mutate: func(c *Config) {},
		},
		{
			name: "valid openai",
			mutate: func(c *Config) {
				c.Curator.Provider = "OpenAI"
				c.Curator.OpenAIAPIKey = "oa"
			},
		},
		{
			name:        "missing database url",
			mutate:      func(c *Config) { c.Database.URL = "" },
			wantErr:     true,
			errContains: "POSTGRES_URL",
		},
		{
			name:        "missing gemini key",
			mutate:      func(c *Config) { c.Curator.GeminiAPIKey = "" },
			wantErr:     true,
			errContains: "GEMINI_API_KEY",
		},
		{
			name:        "unknown provider",
			mutate:      func(c *Config) { c.Curator.Provider = "llama" },
			wantErr:     true,
			errContains: "unsupported curator provider",
		},
		{
			name:        "negative retries",
			mutate:      func(c *Config) { c.Curator.MaxRetries = -1 },
			wantErr:     true,
			errContains: "max retries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errContains)
			}
		})
	}
}
