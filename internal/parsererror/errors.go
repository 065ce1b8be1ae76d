// Package parsererror defines the typed errors surfaced by the
// document-extraction pipeline. Each stage wraps its underlying cause in one
// of these types so that callers can decide on fallback behavior with
// errors.As instead of string matching.
package parsererror

import "fmt"

// ImageProcessingError indicates that preparing an image for OCR failed.
// No partial output is produced alongside this error.
type ImageProcessingError struct {
	Path string
	Err  error
}

func (e *ImageProcessingError) Error() string {
	return fmt.Sprintf("image processing failed for %s: %v", e.Path, e.Err)
}

func (e *ImageProcessingError) Unwrap() error {
	return e.Err
}

// OCRError indicates that optical character recognition failed. The caller
// owns the fallback (manual entry); this error never aborts the pipeline.
type OCRError struct {
	Path string
	Err  error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("ocr failed for %s: %v", e.Path, e.Err)
}

func (e *OCRError) Unwrap() error {
	return e.Err
}

// PDFParseError indicates a corrupt, encrypted, or otherwise unreadable PDF.
type PDFParseError struct {
	Path string
	Err  error
}

func (e *PDFParseError) Error() string {
	return fmt.Sprintf("pdf text extraction failed for %s: %v", e.Path, e.Err)
}

func (e *PDFParseError) Unwrap() error {
	return e.Err
}

// LLMError covers model-call failures: network errors, missing candidates,
// and responses the JSON extractor could not salvage. Recovered locally by
// falling back to the heuristic parsers.
type LLMError struct {
	Op  string
	Err error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm %s failed: %v", e.Op, e.Err)
}

func (e *LLMError) Unwrap() error {
	return e.Err
}

// PersistenceError records a per-item failure during bulk commit. It is
// collected, never propagated to abort the batch.
type PersistenceError struct {
	Index int
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist transaction %d: %v", e.Index, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// CategoryResolutionError should be unreachable: the resolver guarantees an
// "Other" fallback. If it surfaces, it points at an internal-consistency bug
// (for example a store that cannot create categories at all).
type CategoryResolutionError struct {
	Hint string
	Err  error
}

func (e *CategoryResolutionError) Error() string {
	return fmt.Sprintf("category resolution failed for hint %q: %v", e.Hint, e.Err)
}

func (e *CategoryResolutionError) Unwrap() error {
	return e.Err
}
