package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goanonym/internal/database"
	"github.com/dbsmedya/goanonym/internal/logger"
	"github.com/dbsmedya/goanonym/internal/report"
)

var (
	previewTable string
	previewLimit int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the first rows of a table",
	Long: `Preview reads a table and prints its first rows as an aligned text
table. Defaults to the configured patient table.

Example:
  goanonym preview --config goanonym.yaml --limit 5`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewTable, "table", "",
		"Table to preview (defaults to the configured patient table)")
	previewCmd.Flags().IntVarP(&previewLimit, "limit", "n", 5,
		"Number of rows to show")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := database.SetupSignalHandler()

	dbManager, store, err := connectStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	table := previewTable
	keyColumn := cfg.Dataset.KeyColumn
	if table == "" {
		table = cfg.Dataset.Table
	}
	if table == cfg.Dataset.EdgeTable {
		keyColumn = "node_a"
	}

	ds, err := store.ReadTable(ctx, table, keyColumn)
	if err != nil {
		return err
	}

	cmd.Printf("Table %s (%d rows):\n\n", table, ds.Len())
	return report.RenderTable(cmd.OutOrStdout(), ds, previewLimit)
}
