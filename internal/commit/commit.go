// Package commit persists batches of reviewed transactions. Each item is
// committed independently: one bad row never blocks the rest of the batch.
package commit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ERUDITE137/shikhar-finance/internal/categories"
	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
	"github.com/ERUDITE137/shikhar-finance/internal/parsererror"
)

// TransactionStore persists finalized transaction records.
type TransactionStore interface {
	Save(ctx context.Context, record models.TransactionRecord) error
}

// Request is a batch of reviewed transactions plus the source document name.
type Request struct {
	Transactions []models.CandidateTransaction `json:"transactions"`
	Filename     string                        `json:"filename"`
}

// ItemError records one failed item. Index refers to the input batch.
type ItemError struct {
	Index       int                         `json:"index"`
	Transaction models.CandidateTransaction `json:"transaction"`
	Error       string                      `json:"error"`
}

// Summary reports batch-level counts. Total = Created + Failed.
type Summary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Failed  int `json:"failed"`
}

// Result is the outcome of a bulk commit. Created preserves input order;
// Errors is omitted from JSON when every item succeeded.
type Result struct {
	Created []models.TransactionRecord `json:"created"`
	Summary Summary                    `json:"summary"`
	Errors  []ItemError                `json:"errors,omitempty"`
}

// Coordinator runs bulk commits: resolves each transaction's category,
// builds the record, and saves it, isolating failures per item.
type Coordinator struct {
	store    TransactionStore
	resolver *categories.Resolver
	logger   logging.Logger

	// NewID is injectable for deterministic tests.
	NewID func() string
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(store TransactionStore, resolver *categories.Resolver, logger logging.Logger) *Coordinator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Coordinator{store: store, resolver: resolver, logger: logger, NewID: uuid.NewString}
}

// Commit persists the batch sequentially in input order. A failed item is
// recorded with its index and the loop continues; Commit itself only returns
// an error for an empty batch.
func (c *Coordinator) Commit(ctx context.Context, req Request) (*Result, error) {
	if len(req.Transactions) == 0 {
		return nil, fmt.Errorf("no transactions to commit")
	}

	result := &Result{Summary: Summary{Total: len(req.Transactions)}}

	for i, txn := range req.Transactions {
		record, err := c.commitOne(ctx, i, txn, req.Filename)
		if err != nil {
			c.logger.WithError(err).Warn("Failed to commit transaction",
				logging.Field{Key: logging.FieldIndex, Value: i})
			result.Errors = append(result.Errors, ItemError{
				Index:       i,
				Transaction: txn,
				Error:       err.Error(),
			})
			result.Summary.Failed++
			continue
		}
		result.Created = append(result.Created, record)
		result.Summary.Created++
	}

	c.logger.Info("Bulk commit complete",
		logging.Field{Key: logging.FieldCount, Value: result.Summary.Created})

	return result, nil
}

func (c *Coordinator) commitOne(ctx context.Context, index int, txn models.CandidateTransaction, filename string) (models.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.TransactionRecord{}, err
	}

	categoryID, err := c.resolver.ResolveForCommit(txn.Category, txn.SuggestedCategory)
	if err != nil {
		return models.TransactionRecord{}, err
	}

	date := txn.Date
	if date.IsZero() {
		date = time.Now()
	}

	record := models.TransactionRecord{
		ID:                   c.NewID(),
		Amount:               txn.Amount,
		Description:          txn.Description,
		Type:                 txn.Type,
		CategoryID:           categoryID,
		Date:                 date,
		Notes:                fmt.Sprintf("Imported from PDF: %s", filename),
		ExtractedFromReceipt: false,
	}

	if err := c.store.Save(ctx, record); err != nil {
		return models.TransactionRecord{}, &parsererror.PersistenceError{Index: index, Err: err}
	}
	return record, nil
}
