// Package ocr runs optical character recognition on receipt images by
// shelling out to the tesseract binary. The output is best-effort UTF-8 text
// with no guaranteed structure; the heuristic parsers downstream deal with
// the noise.
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/parsererror"
)

// Config controls the tesseract invocation.
type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Language  string // default "eng"
}

// Engine recognizes text in images.
type Engine struct {
	cfg    Config
	runner Runner
	logger logging.Logger
}

// NewEngine creates an Engine using the real tesseract binary.
func NewEngine(cfg Config, logger logging.Logger) *Engine {
	return NewEngineWithRunner(cfg, execRunner{}, logger)
}

// NewEngineWithRunner creates an Engine with an injected command runner,
// which lets tests avoid invoking tesseract.
func NewEngineWithRunner(cfg Config, runner Runner, logger logging.Logger) *Engine {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{cfg: cfg, runner: runner, logger: logger}
}

// Recognize runs OCR on the image at path and returns the recognized text.
// Failures come back as *parsererror.OCRError; the caller decides the
// fallback (typically the manual-entry path).
func (e *Engine) Recognize(ctx context.Context, path string) (string, error) {
	e.logger.Debug("Running OCR",
		logging.Field{Key: logging.FieldFile, Value: path})

	out, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Language)
	if err != nil {
		return "", &parsererror.OCRError{Path: path, Err: fmt.Errorf("tesseract: %w", err)}
	}

	text := strings.TrimSpace(string(out))
	e.logger.Debug("OCR complete",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(text)})
	return text, nil
}
