package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir %q, got %q", "data", cfg.DataDir)
	}
	if cfg.Provider != ProviderNone {
		t.Errorf("expected generation off by default, got provider %q", cfg.Provider)
	}
	if cfg.RequestsPerMinute != 20 {
		t.Errorf("expected default requests_per_minute 20, got %d", cfg.RequestsPerMinute)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.smartshop.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.DataDir = "var/smartshop"
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.RequestsPerMinute = 5
	original.AllowAllOrigins = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DataDir != original.DataDir {
		t.Errorf("data_dir: got %q, want %q", loaded.DataDir, original.DataDir)
	}
	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.RequestsPerMinute != original.RequestsPerMinute {
		t.Errorf("requests_per_minute: got %d, want %d", loaded.RequestsPerMinute, original.RequestsPerMinute)
	}
	if loaded.AllowAllOrigins != original.AllowAllOrigins {
		t.Errorf("allow_all_origins: got %v, want %v", loaded.AllowAllOrigins, original.AllowAllOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override provider via env var.
	os.Setenv("SMARTSHOP_PROVIDER", "ollama")
	defer os.Unsetenv("SMARTSHOP_PROVIDER")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Provider != ProviderOllama {
		t.Errorf("env override failed: got %q, want %q", loaded.Provider, ProviderOllama)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 70000")
	}
}

func TestValidateEmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty data_dir")
	}
}

func TestValidateInvalidProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown provider")
	}
}

func TestValidateEmptyProviderIsAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderNone
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty provider disables generation and should be valid, got: %v", err)
	}
}

func TestValidateNegativeRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequestsPerMinute = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative requests_per_minute")
	}
}

func TestDatabasePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "var"
	if got := cfg.DatabasePath(); got != filepath.Join("var", "catalog.db") {
		t.Errorf("DatabasePath() = %q", got)
	}
}

func TestDefaultModel(t *testing.T) {
	tests := []struct {
		provider ProviderType
		want     string
	}{
		{ProviderOpenAI, "gpt-4o-mini"},
		{ProviderOllama, "llama3"},
		{ProviderNone, ""},
	}
	for _, tt := range tests {
		if got := DefaultModel(tt.provider); got != tt.want {
			t.Errorf("DefaultModel(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}
