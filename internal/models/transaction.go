package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CandidateTransaction is an unvalidated transaction extracted from a
// document, awaiting review and validation. It is produced by the parsers and
// consumed by the validator; it is never persisted directly.
type CandidateTransaction struct {
	Date              time.Time       `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Type              string          `json:"type"`
	SuggestedCategory string          `json:"suggestedCategory,omitempty"`
	Confidence        string          `json:"confidence"`
	Source            string          `json:"source"`

	// RawLine keeps the original statement line for audit.
	RawLine string `json:"rawLine,omitempty"`

	// Category carries a user-chosen category name on the bulk-commit path.
	Category string `json:"category,omitempty"`
}

// ReceiptFile describes the uploaded artifact attached to a transaction
// created from a receipt.
type ReceiptFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

// TransactionRecord is the payload handed to the persistence layer. The store
// owns the record's lifecycle; the pipeline only produces it.
type TransactionRecord struct {
	ID                   string          `json:"id"`
	Amount               decimal.Decimal `json:"amount"`
	Description          string          `json:"description"`
	Type                 string          `json:"type"`
	CategoryID           string          `json:"category"`
	Date                 time.Time       `json:"date"`
	Notes                string          `json:"notes,omitempty"`
	ExtractedFromReceipt bool            `json:"extractedFromReceipt"`
	Receipt              *ReceiptFile    `json:"receipt,omitempty"`
}
