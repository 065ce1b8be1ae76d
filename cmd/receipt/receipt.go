// Package receipt handles single-receipt extraction commands.
package receipt

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ERUDITE137/shikhar-finance/cmd/root"
	"github.com/ERUDITE137/shikhar-finance/internal/extract"
	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

var createTransaction bool

// Cmd represents the receipt command.
var Cmd = &cobra.Command{
	Use:   "receipt <file>",
	Short: "Extract transaction fields from a receipt image or PDF",
	Long: `Extract merchant, amount, date, and line items from a receipt.
Images are optimized and run through OCR; PDFs are read directly. With
--create, a transaction is persisted immediately when an amount was found.`,
	Args: cobra.ExactArgs(1),
	Run:  receiptFunc,
}

func init() {
	Cmd.Flags().BoolVar(&createTransaction, "create", false, "Persist a transaction from the extracted fields")
}

func receiptFunc(cmd *cobra.Command, args []string) {
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

	orchestrator := root.NewOrchestrator()
	ctx := context.Background()

	var result *extract.ReceiptResult
	if extract.IsPDF(mimeType) {
		result, err = orchestrator.ProcessReceiptPDF(ctx, path)
	} else {
		result, err = orchestrator.ProcessReceipt(ctx, path)
	}
	if err != nil {
		log.WithError(err).Error("Receipt processing failed")
		os.Exit(1)
	}

	if createTransaction {
		createFromResult(ctx, orchestrator, result, path, mimeType, info.Size())
	}

	if err := root.WriteJSON(result); err != nil {
		log.WithError(err).Error("Failed to write result")
		os.Exit(1)
	}
}

func createFromResult(ctx context.Context, orchestrator *extract.Orchestrator, result *extract.ReceiptResult, path, mimeType string, size int64) {
	file := models.ReceiptFile{
		Filename:     filepath.Base(path),
		OriginalName: filepath.Base(path),
		MimeType:     mimeType,
		Size:         size,
		Path:         path,
	}

	record, err := orchestrator.BuildReceiptTransaction(result.ExtractedData, file, root.NewResolver())
	if err != nil {
		root.Log.WithError(err).Warn("Could not create transaction from receipt")
		return
	}
	if err := root.NewTransactionStore().Save(ctx, *record); err != nil {
		root.Log.WithError(err).Error("Failed to persist transaction")
		return
	}
	root.Log.Info("Transaction created from receipt")
}
