package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goanonym/internal/database"
	"github.com/dbsmedya/goanonym/internal/logger"
	"github.com/dbsmedya/goanonym/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Provision the schema and load the synthetic patient corpus",
	Long: `Seed drops and recreates the patient and edge tables, then inserts the
literal synthetic sample records with a single bulk statement per table.

Example:
  goanonym seed --config goanonym.yaml`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Infow("Starting seed", "table", cfg.Dataset.Table, "edge_table", cfg.Dataset.EdgeTable)

	ctx := database.SetupSignalHandler()

	dbManager, store, err := connectStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	seeder := seed.NewSeeder(store, log)
	result, err := seeder.Seed(ctx, &cfg.Dataset)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	cmd.Printf("\n=== Seed Complete ===\n")
	cmd.Printf("Patient rows: %d\n", result.PatientRows)
	cmd.Printf("Edge rows: %d\n", result.EdgeRows)

	return nil
}
