// Package pdftext extracts raw text from PDF documents by shelling out to
// pdftotext. Page text is concatenated in order; layout mode keeps tabular
// statement rows on one line, which the statement parser depends on.
package pdftext

import (
	"context"
	"fmt"

	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/ocr"
	"github.com/ERUDITE137/shikhar-finance/internal/parsererror"
)

// Extractor extracts text content from a PDF file. The interface allows for
// dependency injection and makes callers testable without poppler installed.
type Extractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// PopplerExtractor implements Extractor using the pdftotext command.
type PopplerExtractor struct {
	binary string
	runner ocr.Runner
	logger logging.Logger
}

// NewPopplerExtractor creates a PopplerExtractor. An empty binary defaults to
// "pdftotext" on PATH.
func NewPopplerExtractor(binary string, logger logging.Logger) *PopplerExtractor {
	return NewPopplerExtractorWithRunner(binary, nil, logger)
}

// NewPopplerExtractorWithRunner creates a PopplerExtractor with an injected
// command runner for tests.
func NewPopplerExtractorWithRunner(binary string, runner ocr.Runner, logger logging.Logger) *PopplerExtractor {
	if binary == "" {
		binary = "pdftotext"
	}
	if runner == nil {
		runner = ocr.ExecRunner()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &PopplerExtractor{binary: binary, runner: runner, logger: logger}
}

// ExtractText returns the concatenated text of all pages, in order. Corrupt,
// encrypted, or unreadable files come back as *parsererror.PDFParseError.
func (p *PopplerExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	p.logger.Debug("Extracting PDF text",
		logging.Field{Key: logging.FieldFile, Value: path})

	out, err := p.runner.Run(ctx, p.binary, "-layout", path, "-")
	if err != nil {
		return "", &parsererror.PDFParseError{Path: path, Err: fmt.Errorf("pdftotext: %w", err)}
	}

	p.logger.Debug("PDF text extracted",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(out)})
	return string(out), nil
}
