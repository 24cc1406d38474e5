package cmd

import (
	"encoding/json"
	"fmt"

	"spell-miner/core/flatten"
	"spell-miner/feature/spells"

	"github.com/spf13/cobra"
)

var treeFlag bool

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [record]",
	Short: "Run the pipeline on one record without persisting",
	Long: `Fetches a single record from the configured source, materializes
and flattens it, and prints the rows that an ingestion pass would write.
With --tree the rows are reassembled into the original nesting shape.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.logg.Sync()

		svc := spells.NewService(a.source, a.store, a.sink, a.reg, a.logg, a.cfg.Ingest)
		rows, err := svc.InspectRecord(ctx, args[0])
		if err != nil {
			return err
		}

		var out []byte
		if treeFlag {
			roots, err := flatten.Reassemble(rows)
			if err != nil {
				return err
			}
			out, _ = json.MarshalIndent(roots, "", "  ")
		} else {
			out, _ = json.MarshalIndent(rows, "", "  ")
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&treeFlag, "tree", false, "print the reassembled tree instead of raw rows")
	RootCmd.AddCommand(inspectCmd)
}
