package cmd

import (
	"encoding/json"
	"fmt"

	"spell-miner/feature/integrity"

	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify pipeline coverage and database schema",
	Long: `Accounts for every source record against the store and the failure
side-channel, and checks the live table layout against the variant
catalog. Exits non-zero when gaps are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.logg.Sync()

		svc := integrity.NewService(a.source, a.store, a.sink, a.db, a.reg, a.logg)

		coverage, err := svc.CheckCoverage(ctx)
		if err != nil {
			return err
		}
		schema, err := svc.CheckSchema(ctx)
		if err != nil {
			return err
		}

		report := map[string]any{
			"coverage": coverage,
			"schema":   schema,
		}
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(out))

		if !coverage.Complete() || !schema.Complete() {
			return fmt.Errorf("integrity gaps found: %d missing, %d orphaned, %d tables absent",
				len(coverage.Missing), len(coverage.Orphaned), len(schema.MissingTables))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}
