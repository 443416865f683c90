package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goanonym/internal/anonymize"
	"github.com/dbsmedya/goanonym/internal/database"
	"github.com/dbsmedya/goanonym/internal/logger"
)

var suppressTransform string

var suppressCmd = &cobra.Command{
	Use:   "suppress",
	Short: "Replace values above a threshold with a sentinel",
	Long: `Suppress replaces every value of a numeric column that is strictly
greater than the configured threshold with a sentinel value (-1 by default).
Values equal to the threshold pass through unchanged.

Example:
  goanonym suppress --config goanonym.yaml --transform cap_expenses`,
	RunE: runSuppress,
}

func init() {
	suppressCmd.Flags().StringVarP(&suppressTransform, "transform", "t", "",
		"Transform name from configuration file (required)")
	suppressCmd.MarkFlagRequired("transform")

	rootCmd.AddCommand(suppressCmd)
}

func runSuppress(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tc, err := cfg.GetTransform(suppressTransform)
	if err != nil {
		return err
	}
	if tc.Type != "suppress" {
		return fmt.Errorf("transform %q has type %q, expected 'suppress'", suppressTransform, tc.Type)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = log.WithTransform(suppressTransform)

	ctx := database.SetupSignalHandler()

	dbManager, store, err := connectStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	table := cfg.Dataset.Table

	ds, err := store.ReadTable(ctx, table, cfg.Dataset.KeyColumn)
	if err != nil {
		return err
	}

	suppressed, err := anonymize.SuppressColumn(ds, tc.Column, tc.Threshold, tc.SentinelValue())
	if err != nil {
		return fmt.Errorf("suppression failed: %w", err)
	}

	rows, err := store.UpdateColumn(ctx, table, cfg.Dataset.KeyColumn, tc.Column, ds)
	if err != nil {
		return err
	}

	log.Infow("Suppression applied",
		"column", tc.Column,
		"threshold", tc.Threshold,
		"sentinel", tc.SentinelValue(),
		"suppressed", suppressed,
	)

	cmd.Printf("\n=== Suppression Complete ===\n")
	cmd.Printf("Table: %s\n", table)
	cmd.Printf("Column: %s\n", tc.Column)
	cmd.Printf("Threshold: %v (strictly greater-than)\n", tc.Threshold)
	cmd.Printf("Rows written: %d\n", rows)
	cmd.Printf("Values suppressed: %d\n", suppressed)

	return nil
}
