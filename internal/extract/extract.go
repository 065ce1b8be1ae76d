// Package extract orchestrates the document-extraction pipeline: it drives
// image preprocessing, OCR, PDF text extraction, the heuristic parsers, and
// the language model, and assembles the boundary results handed to callers.
// The orchestrator degrades instead of failing: a dead model or an unreadable
// document yields a flagged, possibly empty result, never an abort.
package extract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
	"github.com/ERUDITE137/shikhar-finance/internal/receiptparser"
	"github.com/ERUDITE137/shikhar-finance/internal/statementparser"
	"github.com/ERUDITE137/shikhar-finance/internal/summary"
	"github.com/ERUDITE137/shikhar-finance/internal/validate"
)

// ImageOptimizer produces an OCR-ready copy of an image file. The cleanup
// removes the copy and is called on every exit path.
type ImageOptimizer interface {
	OptimizeFile(srcPath string) (string, func(), error)
}

// OCREngine recognizes text in an image file.
type OCREngine interface {
	Recognize(ctx context.Context, path string) (string, error)
}

// PDFTextExtractor extracts the concatenated page text of a PDF.
type PDFTextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// ModelExtractor is the language-model side of extraction. A nil receipt or
// empty transaction list with a nil error means the model answered unusably;
// a non-nil error means the call failed. Both send the orchestrator down the
// heuristic path.
type ModelExtractor interface {
	ParseReceipt(ctx context.Context, text string) (*models.ReceiptFields, error)
	ParseStatement(ctx context.Context, text string) ([]models.CandidateTransaction, error)
}

// Orchestrator wires the pipeline stages together. Any of optimizer, engine,
// pdf, or model may be nil; the corresponding stage is skipped.
type Orchestrator struct {
	optimizer ImageOptimizer
	engine    OCREngine
	pdf       PDFTextExtractor
	model     ModelExtractor

	receipts   *receiptparser.Parser
	statements *statementparser.Parser
	validator  *validate.Validator
	logger     logging.Logger

	// Now and NewID are injectable for deterministic tests.
	Now   func() time.Time
	NewID func() string
}

// NewOrchestrator creates an Orchestrator over the given stages.
func NewOrchestrator(optimizer ImageOptimizer, engine OCREngine, pdf PDFTextExtractor, model ModelExtractor, logger logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Orchestrator{
		optimizer:  optimizer,
		engine:     engine,
		pdf:        pdf,
		model:      model,
		receipts:   receiptparser.NewParser(),
		statements: statementparser.NewParser(logger),
		validator:  validate.NewValidator(),
		logger:     logger,
		Now:        time.Now,
		NewID:      uuid.NewString,
	}
}

// ProcessStatement runs the statement pipeline over a PDF: text extraction,
// then the model, then the regex parser as fallback. Model and regex results
// are never mixed: one or more model transactions means the model result is
// used exclusively.
func (o *Orchestrator) ProcessStatement(ctx context.Context, path string) (*StatementResult, error) {
	text, err := o.pdf.ExtractText(ctx, path)
	if err != nil {
		return nil, err
	}
	return o.processStatementText(ctx, text), nil
}

// ProcessStatementText runs the statement pipeline over already-extracted
// text.
func (o *Orchestrator) ProcessStatementText(ctx context.Context, text string) *StatementResult {
	return o.processStatementText(ctx, text)
}

func (o *Orchestrator) processStatementText(ctx context.Context, text string) *StatementResult {
	transactions, method, processingError := o.extractStatementTransactions(ctx, text)

	valid, counts := o.validator.Filter(transactions)

	o.logger.Info("Statement processed",
		logging.Field{Key: logging.FieldMethod, Value: method},
		logging.Field{Key: logging.FieldCount, Value: counts.ValidTransactions})

	return &StatementResult{
		ExtractedData: StatementData{
			Transactions:      valid,
			Summary:           summary.Aggregate(valid),
			ValidationResults: counts,
			ProcessingMethod:  method,
			RawText:           text,
		},
		ProcessingError: processingError,
	}
}

// extractStatementTransactions returns the winning transaction list, the
// method that produced it, and whether the model call failed outright.
func (o *Orchestrator) extractStatementTransactions(ctx context.Context, text string) ([]models.CandidateTransaction, string, bool) {
	processingError := false

	if o.model != nil {
		fromModel, err := o.model.ParseStatement(ctx, text)
		if err != nil {
			processingError = true
			o.logger.WithError(err).Warn("Model statement extraction failed, falling back to regex parsing")
		} else if len(fromModel) > 0 {
			return fromModel, models.SourceLLM, false
		}
	}

	return o.statements.Parse(text), models.SourceRegex, processingError
}

// ProcessReceipt runs the receipt pipeline over an image: optimize, OCR,
// heuristic parse, model parse, field merge. The model result wins
// field-by-field where it produced a value; heuristic values fill the gaps.
func (o *Orchestrator) ProcessReceipt(ctx context.Context, path string) (*ReceiptResult, error) {
	ocrPath := path
	if o.optimizer != nil {
		optimized, cleanup, err := o.optimizer.OptimizeFile(path)
		if err != nil {
			// OCR the original rather than give up on the receipt.
			o.logger.WithError(err).Warn("Image optimization failed, using original",
				logging.Field{Key: logging.FieldFile, Value: path})
		} else {
			ocrPath = optimized
			defer cleanup()
		}
	}

	text, err := o.engine.Recognize(ctx, ocrPath)
	if err != nil {
		// Unreadable image: hand back an empty, flagged extraction so the
		// caller can fall through to manual entry.
		o.logger.WithError(err).Warn("OCR failed",
			logging.Field{Key: logging.FieldFile, Value: path})
		empty := o.receipts.Parse("")
		return &ReceiptResult{
			ExtractedData: ReceiptData{
				ReceiptExtraction: *empty,
				Description:       receiptparser.GenerateDescription(empty),
			},
			ProcessingError: true,
		}, nil
	}

	return o.processReceiptText(ctx, text, false), nil
}

// ProcessReceiptPDF runs the receipt pipeline over a PDF receipt or invoice.
// PDF receipts are sometimes actually exported transaction histories; when
// the statement parser recognizes more than one transaction in the text, the
// result is flagged so the caller can steer the user to the statement flow.
func (o *Orchestrator) ProcessReceiptPDF(ctx context.Context, path string) (*ReceiptResult, error) {
	text, err := o.pdf.ExtractText(ctx, path)
	if err != nil {
		return nil, err
	}
	return o.processReceiptText(ctx, text, true), nil
}

func (o *Orchestrator) processReceiptText(ctx context.Context, text string, detectHistory bool) *ReceiptResult {
	extraction := o.receipts.Parse(text)
	processingError := false

	if o.model != nil {
		fields, err := o.model.ParseReceipt(ctx, text)
		if err != nil {
			processingError = true
			o.logger.WithError(err).Warn("Model receipt extraction failed, keeping heuristic result")
		} else if fields != nil {
			mergeReceiptFields(extraction, fields)
		}
	}

	data := ReceiptData{
		ReceiptExtraction: *extraction,
		Description:       receiptparser.GenerateDescription(extraction),
	}
	if data.Category == "" {
		data.Category = receiptparser.SuggestCategory(extraction)
	}

	if detectHistory {
		if n := len(o.statements.Parse(text)); n > 1 {
			data.IsTransactionHistory = true
			data.TransactionCount = n
		}
	}

	return &ReceiptResult{ExtractedData: data, ProcessingError: processingError}
}

// mergeReceiptFields overlays the model's fields onto the heuristic
// extraction. The model wins wherever it produced a value; zero values never
// overwrite heuristic findings.
func mergeReceiptFields(extraction *models.ReceiptExtraction, fields *models.ReceiptFields) {
	if fields.Merchant != "" {
		extraction.Merchant = fields.Merchant
	}
	if fields.Amount.IsPositive() {
		extraction.Amount = fields.Amount
	}
	if !fields.Date.IsZero() {
		extraction.Date = fields.Date
	}
	if fields.Category != "" {
		extraction.Category = fields.Category
	}
}
