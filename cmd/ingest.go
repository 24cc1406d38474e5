package cmd

import (
	"encoding/json"
	"fmt"

	"spell-miner/feature/spells"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion pass over the configured archive source",
	Long: `Reads every record from the configured source, materializes and
flattens it, and persists the rows. Failed records are isolated into the
failure directory and reported in the summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.logg.Sync()

		svc := spells.NewService(a.source, a.store, a.sink, a.reg, a.logg, a.cfg.Ingest)
		summary, err := svc.IngestAll(ctx)
		if err != nil {
			a.logg.Error("Ingestion pass aborted", zap.Error(err))
			return err
		}

		out, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(ingestCmd)
}
