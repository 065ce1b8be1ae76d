package llm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// DefaultTimeout bounds a single model call. Expiry is treated as a model
// failure and sends the caller down the heuristic fallback path.
const DefaultTimeout = 30 * time.Second

// Extractor parses document text through the language model. A nil receipt
// result or empty transaction list with a nil error means the model answered
// but the answer was unusable; a non-nil error means the call itself failed.
// Either way the caller falls back, so neither is ever fatal.
type Extractor struct {
	client  Client
	timeout time.Duration
	logger  logging.Logger
}

// NewExtractor creates an Extractor around a Client. A non-positive timeout
// falls back to DefaultTimeout.
func NewExtractor(client Client, timeout time.Duration, logger logging.Logger) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{client: client, timeout: timeout, logger: logger}
}

// receiptWire mirrors the receipt prompt contract, with the alternate field
// names models sometimes substitute.
type receiptWire struct {
	Merchant    string      `json:"merchant"`
	Amount      flexDecimal `json:"amount"`
	TotalAmount flexDecimal `json:"total_amount"`
	Date        string      `json:"date"`
	InvoiceDate string      `json:"invoice_date"`
	OrderDate   string      `json:"order_date"`
	Category    string      `json:"category"`
}

// ParseReceipt extracts the four receipt fields from raw document text.
// Returns (nil, nil) when the response held no usable JSON.
func (e *Extractor) ParseReceipt(ctx context.Context, text string) (*models.ReceiptFields, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateText(ctx, receiptPrompt(text))
	if err != nil {
		return nil, err
	}

	block, ok := ExtractJSONBlock(raw)
	if !ok {
		e.logger.Warn("Model response contained no JSON object")
		return nil, nil
	}

	var wire receiptWire
	if err := json.Unmarshal([]byte(block), &wire); err != nil {
		e.logger.WithError(err).Warn("Failed to decode model receipt response")
		return nil, nil
	}

	fields := &models.ReceiptFields{
		Merchant: wire.Merchant,
		Category: wire.Category,
	}
	if fields.Category == "" {
		fields.Category = "shopping"
	}

	amount := wire.Amount
	if !amount.present {
		amount = wire.TotalAmount
	}
	if amount.present {
		fields.Amount = amount.Decimal
	}

	for _, dateStr := range []string{wire.Date, wire.InvoiceDate, wire.OrderDate} {
		if t, ok := parseISODate(dateStr); ok {
			fields.Date = t
			break
		}
	}

	return fields, nil
}

// statementWire mirrors the statement prompt contract.
type statementWire struct {
	Transactions []statementRowWire `json:"transactions"`
}

type statementRowWire struct {
	Date        string      `json:"date"`
	Amount      flexDecimal `json:"amount"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
}

// ParseStatement extracts a transaction list from statement text. Rows
// missing any of amount, date, or description are dropped; amounts are taken
// by absolute value; type defaults to expense unless the model said exactly
// "income". Returns (nil, nil) when the response held no usable JSON.
func (e *Extractor) ParseStatement(ctx context.Context, text string) ([]models.CandidateTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateText(ctx, statementPrompt(text))
	if err != nil {
		return nil, err
	}

	block, ok := ExtractJSONBlock(raw)
	if !ok {
		e.logger.Warn("Model response contained no JSON object")
		return nil, nil
	}

	var wire statementWire
	if err := json.Unmarshal([]byte(block), &wire); err != nil {
		e.logger.WithError(err).Warn("Failed to decode model statement response")
		return nil, nil
	}

	var transactions []models.CandidateTransaction
	for _, row := range wire.Transactions {
		if !row.Amount.present || row.Date == "" || row.Description == "" {
			continue
		}
		date, ok := parseISODate(row.Date)
		if !ok {
			continue
		}
		amount := row.Amount.Abs()
		if !amount.IsPositive() {
			continue
		}

		txnType := models.TypeExpense
		if row.Type == models.TypeIncome {
			txnType = models.TypeIncome
		}

		category := row.Category
		if category == "" {
			category = "other"
		}

		transactions = append(transactions, models.CandidateTransaction{
			Date:              date,
			Amount:            amount,
			Description:       strings.TrimSpace(row.Description),
			Type:              txnType,
			SuggestedCategory: category,
			Confidence:        models.ConfidenceHigh,
			Source:            models.SourceLLM,
		})
	}

	e.logger.Debug("Model statement extraction complete",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, nil
}

var isoLayouts = []string{"2006-01-02", "2006-1-2", time.RFC3339}

func parseISODate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
