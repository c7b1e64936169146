package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyankdesai/smartshop/internal/catalog"
	"github.com/priyankdesai/smartshop/internal/db"
	"github.com/priyankdesai/smartshop/internal/progress"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the catalog with demo products and price history",
	Long:  `Writes the demo product set into the configured database, including six months of weekly price history per product. Existing demo products are replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := catalog.NewStore(database)

		reporter := progress.NewReporter("Seeding catalog")
		reporter.Start(catalog.SeedCount)
		done := 0
		err = store.Seed(cmd.Context(), func(name string) {
			done++
			reporter.Update(done, name)
		})
		reporter.Finish()
		if err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Seeded %d products into %s\n", catalog.SeedCount, cfg.DatabasePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
