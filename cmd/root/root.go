// Package root contains the root command and the shared pipeline wiring used
// by every subcommand.
package root

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ERUDITE137/shikhar-finance/internal/categories"
	"github.com/ERUDITE137/shikhar-finance/internal/commit"
	"github.com/ERUDITE137/shikhar-finance/internal/config"
	"github.com/ERUDITE137/shikhar-finance/internal/extract"
	"github.com/ERUDITE137/shikhar-finance/internal/imageprep"
	"github.com/ERUDITE137/shikhar-finance/internal/llm"
	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/ocr"
	"github.com/ERUDITE137/shikhar-finance/internal/pdftext"
)

// CommonFlags holds flags shared by multiple commands.
type CommonFlags struct {
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun.
	Cfg *config.Config

	// SharedFlags are common flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "shikhar-finance",
		Short: "Extract transactions from receipt images and bank-statement PDFs.",
		Long: `shikhar-finance turns uploaded documents into structured transactions.
Receipt images go through OCR and heuristic parsing; bank-statement PDFs go
through text extraction and a regex parser; both are refined by the Gemini
model when an API key is configured.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Error("Failed to load configuration")
				os.Exit(1)
			}
			Cfg = cfg

			logging.SetLogger(logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
			Log = logging.GetLogger()
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default stdout)")
}

// NewOrchestrator builds the extraction pipeline from the loaded
// configuration. The model stage is only wired when AI is enabled and an API
// key is present.
func NewOrchestrator() *extract.Orchestrator {
	var model extract.ModelExtractor
	if Cfg.AI.Enabled && Cfg.AI.APIKey != "" {
		client := llm.NewGeminiClient(Cfg.AI.APIKey, Cfg.AI.Model, Log)
		model = llm.NewExtractor(client, time.Duration(Cfg.AI.TimeoutSeconds)*time.Second, Log)
	} else {
		Log.Info("AI extraction disabled, using heuristic parsers only")
	}

	optimizer := imageprep.NewPreprocessor(Cfg.Image.MaxWidth, Cfg.Image.JPEGQuality, Log)
	engine := ocr.NewEngine(ocr.Config{Tesseract: Cfg.OCR.Tesseract, Language: Cfg.OCR.Language}, Log)
	pdf := pdftext.NewPopplerExtractor(Cfg.PDF.Pdftotext, Log)

	return extract.NewOrchestrator(optimizer, engine, pdf, model, Log)
}

// NewResolver builds a category resolver over the configured YAML store.
func NewResolver() *categories.Resolver {
	return categories.NewResolver(categories.NewYAMLStore(Cfg.Data.CategoriesFile), Log)
}

// NewTransactionStore builds the CSV transaction store from configuration.
func NewTransactionStore() commit.TransactionStore {
	return commit.NewCSVStore(Cfg.Data.TransactionsFile, []rune(Cfg.CSV.Delimiter)[0], Log)
}

// WriteJSON writes v as indented JSON to the shared output flag, or stdout
// when no output file was given.
func WriteJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	data = append(data, '\n')

	if SharedFlags.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(SharedFlags.Output, data, 0o644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}
