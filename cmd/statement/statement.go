// Package statement handles bank-statement extraction commands.
package statement

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ERUDITE137/shikhar-finance/cmd/root"
	"github.com/ERUDITE137/shikhar-finance/internal/extract"
	"github.com/ERUDITE137/shikhar-finance/internal/logging"
)

// Cmd represents the statement command.
var Cmd = &cobra.Command{
	Use:   "statement <file.pdf>",
	Short: "Extract transactions from a bank-statement PDF",
	Long: `Extract, validate, and summarize all transactions found in a
bank-statement PDF. The Gemini model is tried first when configured; the
regex parser takes over when the model yields nothing.`,
	Args: cobra.ExactArgs(1),
	Run:  statementFunc,
}

func statementFunc(cmd *cobra.Command, args []string) {
	path := args[0]
	log := root.Log.WithField(logging.FieldFile, path)

	info, err := os.Stat(path)
	if err != nil {
		log.WithError(err).Error("Cannot read input file")
		os.Exit(1)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if err := extract.CheckUpload(filepath.Base(path), mimeType, info.Size()); err != nil {
		log.WithError(err).Error("Upload rejected")
		os.Exit(1)
	}
	if !extract.IsPDF(mimeType) {
		log.Error("Statements must be PDF documents")
		os.Exit(1)
	}

	result, err := root.NewOrchestrator().ProcessStatement(context.Background(), path)
	if err != nil {
		log.WithError(err).Error("Statement processing failed")
		os.Exit(1)
	}

	log.Info("Statement processed",
		logging.Field{Key: logging.FieldMethod, Value: result.ExtractedData.ProcessingMethod},
		logging.Field{Key: logging.FieldCount, Value: len(result.ExtractedData.Transactions)})

	if err := root.WriteJSON(result); err != nil {
		log.WithError(err).Error("Failed to write result")
		os.Exit(1)
	}
}
