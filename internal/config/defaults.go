package config

import "path/filepath"

// DefaultConfig returns a Config with sensible defaults. Generation is
// off by default; the assistant is fully functional without it.
func DefaultConfig() *Config {
	return &Config{
		Port:              8080,
		DataDir:           "data",
		Provider:          ProviderNone,
		Model:             "",
		RequestsPerMinute: 20,
		AllowAllOrigins:   false,
	}
}

// DatabasePath returns the catalog database location under the data dir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "catalog.db")
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider ProviderType) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderOllama:
		return "llama3"
	default:
		return ""
	}
}
