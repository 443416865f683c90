package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goanonym/internal/anonymize"
	"github.com/dbsmedya/goanonym/internal/database"
	"github.com/dbsmedya/goanonym/internal/logger"
)

var perturbTransform string

var perturbCmd = &cobra.Command{
	Use:   "perturb",
	Short: "Add bounded uniform noise to a numeric column",
	Long: `Perturb adds uniform noise in [-magnitude, magnitude] to a numeric
column, rounds to two decimal places, and clamps at the configured floor.
The result is written to a derived column alongside the original.

Use --seed for a reproducible noise sequence.

Example:
  goanonym perturb --config goanonym.yaml --transform noisy_expenses --seed 42`,
	RunE: runPerturb,
}

func init() {
	perturbCmd.Flags().StringVarP(&perturbTransform, "transform", "t", "",
		"Transform name from configuration file (required)")
	perturbCmd.MarkFlagRequired("transform")

	rootCmd.AddCommand(perturbCmd)
}

func runPerturb(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tc, err := cfg.GetTransform(perturbTransform)
	if err != nil {
		return err
	}
	if tc.Type != "perturb" {
		return fmt.Errorf("transform %q has type %q, expected 'perturb'", perturbTransform, tc.Type)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = log.WithTransform(perturbTransform)

	ctx := database.SetupSignalHandler()

	dbManager, store, err := connectStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	table := cfg.Dataset.Table
	target := tc.TargetColumnOr("perturbed_" + tc.Column)
	seedValue := GetRandomSeed()

	ds, err := store.ReadTable(ctx, table, cfg.Dataset.KeyColumn)
	if err != nil {
		return err
	}

	src := anonymize.NewNoiseSource(seedValue)
	if err := anonymize.PerturbColumn(ds, tc.Column, target, tc.Magnitude, tc.Floor, src); err != nil {
		return fmt.Errorf("perturbation failed: %w", err)
	}

	if err := store.AddColumn(ctx, table, target, "DECIMAL(10,2)"); err != nil {
		return err
	}
	rows, err := store.UpdateColumn(ctx, table, cfg.Dataset.KeyColumn, target, ds)
	if err != nil {
		return err
	}

	log.Infow("Perturbation applied",
		"column", tc.Column,
		"target", target,
		"magnitude", tc.Magnitude,
		"floor", tc.Floor,
		"seed", seedValue,
	)

	cmd.Printf("\n=== Perturbation Complete ===\n")
	cmd.Printf("Table: %s\n", table)
	cmd.Printf("Source column: %s\n", tc.Column)
	cmd.Printf("Derived column: %s\n", target)
	cmd.Printf("Magnitude: %v, floor: %v\n", tc.Magnitude, tc.Floor)
	cmd.Printf("Rows written: %d\n", rows)

	return nil
}
