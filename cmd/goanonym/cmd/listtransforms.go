package cmd

import (
	"sort"

	"github.com/spf13/cobra"
)

var listTransformsCmd = &cobra.Command{
	Use:   "list-transforms",
	Short: "List all transforms defined in configuration",
	Long: `List-transforms displays all transform definitions in the configuration
file along with their basic settings.

Example:
  goanonym list-transforms --config goanonym.yaml`,
	RunE: runListTransforms,
}

func init() {
	rootCmd.AddCommand(listTransformsCmd)
}

func runListTransforms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names := cfg.ListTransforms()
	if len(names) == 0 {
		cmd.Printf("No transforms defined in %s\n", GetConfigFile())
		return nil
	}

	cmd.Printf("Transforms defined in %s:\n\n", GetConfigFile())

	for i, name := range names {
		tc := cfg.Transforms[name]

		cmd.Printf("%d. %s\n", i+1, name)
		cmd.Printf("   Type:        %s\n", tc.Type)

		switch tc.Type {
		case "pseudonymize":
			cmd.Printf("   Columns:     %s + %s -> %s\n", tc.NameColumn, tc.DateColumn, tc.TokenColumn)
			cmd.Printf("   Drop:        %v\n", tc.DropOriginals)
		case "suppress":
			cmd.Printf("   Column:      %s\n", tc.Column)
			cmd.Printf("   Threshold:   %v (sentinel %v)\n", tc.Threshold, tc.SentinelValue())
		case "perturb":
			cmd.Printf("   Column:      %s -> %s\n", tc.Column, tc.TargetColumnOr("perturbed_"+tc.Column))
			cmd.Printf("   Magnitude:   %v (floor %v)\n", tc.Magnitude, tc.Floor)
		case "generalize":
			cols := make([]string, 0, len(tc.Buckets))
			for col := range tc.Buckets {
				cols = append(cols, col)
			}
			sort.Strings(cols)
			for _, col := range cols {
				cmd.Printf("   Bucket:      %s width %v\n", col, tc.Buckets[col])
			}
			if tc.K > 0 {
				cmd.Printf("   K:           %d\n", tc.K)
			}
			if tc.L > 0 {
				cmd.Printf("   L:           %d (sensitive %s)\n", tc.L, tc.SensitiveColumn)
			}
		case "perturb_graph":
			cmd.Printf("   Remove/add:  %v / %v\n", tc.RemoveProbability, tc.AddProbability)
			cmd.Printf("   Target:      %s\n", tc.TargetTable)
		}
		cmd.Printf("\n")
	}

	return nil
}
