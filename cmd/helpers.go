package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/priyankdesai/smartshop/internal/catalog"
	"github.com/priyankdesai/smartshop/internal/config"
	"github.com/priyankdesai/smartshop/internal/db"
	"github.com/priyankdesai/smartshop/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `smartshop init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openCatalog opens the configured database and returns a catalog store
// over it, seeding the demo products when the catalog is empty.
func openCatalog(ctx context.Context, cfg *config.Config) (*db.DB, *catalog.Store, error) {
	database, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	store := catalog.NewStore(database)
	products, err := store.GetCandidates(ctx, "", 0)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("checking catalog: %w", err)
	}
	if len(products) == 0 {
		if err := store.Seed(ctx, nil); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("seeding catalog: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Seeded catalog with %d demo products\n", catalog.SeedCount)
	}
	return database, store, nil
}

// createProviderFromConfig builds the optional text-generation provider.
// A missing API key or unreachable provider is a warning, not a fatal
// error; the assistant falls back to its built-in phrasing.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, string) {
	if cfg.Provider == config.ProviderNone {
		return nil, ""
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultModel(cfg.Provider)
	}

	provider, err := llm.NewProvider(string(cfg.Provider), model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; responses will use built-in phrasing\n", err)
		return nil, ""
	}
	if cfg.RequestsPerMinute > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.RequestsPerMinute)
	}
	return provider, model
}
