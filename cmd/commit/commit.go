// Package commit handles bulk persistence of reviewed transactions.
package commit

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/ERUDITE137/shikhar-finance/cmd/root"
	"github.com/ERUDITE137/shikhar-finance/internal/commit"
	"github.com/ERUDITE137/shikhar-finance/internal/logging"
)

// Cmd represents the commit command.
var Cmd = &cobra.Command{
	Use:   "commit <reviewed.json>",
	Short: "Persist a reviewed batch of extracted transactions",
	Long: `Persist the transactions from a reviewed extraction result. The input
file holds the batch as JSON: {"transactions": [...], "filename": "..."}.
Each transaction is committed independently; failures are reported per item
and never abort the batch.`,
	Args: cobra.ExactArgs(1),
	Run:  commitFunc,
}

func commitFunc(cmd *cobra.Command, args []string) {
	path := args[0]
	log := root.Log.WithField(logging.FieldFile, path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("Cannot read batch file")
		os.Exit(1)
	}

	var req commit.Request
	if err := json.Unmarshal(data, &req); err != nil {
		log.WithError(err).Error("Batch file is not valid JSON")
		os.Exit(1)
	}

	coordinator := commit.NewCoordinator(root.NewTransactionStore(), root.NewResolver(), root.Log)
	result, err := coordinator.Commit(context.Background(), req)
	if err != nil {
		log.WithError(err).Error("Bulk commit failed")
		os.Exit(1)
	}

	log.Info("Batch committed",
		logging.Field{Key: logging.FieldCount, Value: result.Summary.Created})

	if err := root.WriteJSON(result); err != nil {
		log.WithError(err).Error("Failed to write result")
		os.Exit(1)
	}
}
