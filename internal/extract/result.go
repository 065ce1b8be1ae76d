package extract

import (
	"github.com/ERUDITE137/shikhar-finance/internal/models"
	"github.com/ERUDITE137/shikhar-finance/internal/validate"
)

// ReceiptData is the extracted payload of a processed receipt. It carries the
// merged heuristic and model fields plus derived hints for the review UI.
type ReceiptData struct {
	models.ReceiptExtraction

	// Description is a suggested transaction description derived from the
	// merchant or first line item.
	Description string `json:"description"`

	// IsTransactionHistory flags a "receipt" PDF that actually contains a
	// multi-row transaction history; the caller should offer the statement
	// flow instead. TransactionCount says how many rows were recognized.
	IsTransactionHistory bool `json:"isTransactionHistory,omitempty"`
	TransactionCount     int  `json:"transactionCount,omitempty"`
}

// ReceiptResult is the boundary contract for receipt processing.
// ProcessingError is set when a stage failed and the data is degraded; the
// request itself still succeeded.
type ReceiptResult struct {
	ExtractedData   ReceiptData `json:"extractedData"`
	ProcessingError bool        `json:"processingError,omitempty"`
}

// StatementData is the extracted payload of a processed statement.
type StatementData struct {
	Transactions      []models.CandidateTransaction `json:"transactions"`
	Summary           models.Summary                `json:"summary"`
	ValidationResults validate.Counts               `json:"validationResults"`

	// ProcessingMethod records which extraction path won: "llm" when the
	// model produced the transactions, "regex" otherwise.
	ProcessingMethod string `json:"processingMethod"`

	// RawText keeps the full extracted document text for audit.
	RawText string `json:"rawText"`
}

// StatementResult is the boundary contract for statement processing.
type StatementResult struct {
	ExtractedData   StatementData `json:"extractedData"`
	ProcessingError bool          `json:"processingError,omitempty"`
}
