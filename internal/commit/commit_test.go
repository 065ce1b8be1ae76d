package commit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ERUDITE137/shikhar-finance/internal/categories"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// failingStore fails Save for descriptions listed in failOn.
type failingStore struct {
	*MemoryStore
	failOn map[string]bool
}

func (s *failingStore) Save(ctx context.Context, record models.TransactionRecord) error {
	if s.failOn[record.Description] {
		return errors.New("disk full")
	}
	return s.MemoryStore.Save(ctx, record)
}

func newTestCoordinator(store TransactionStore) *Coordinator {
	resolver := categories.NewResolver(categories.NewMemoryStore(
		models.Category{ID: "cat-other", Name: models.CategoryOther, Type: models.CategoryTypeBoth},
		models.Category{ID: "cat-shopping", Name: "Shopping", Type: models.CategoryTypeExpense},
	), nil)
	c := NewCoordinator(store, resolver, nil)
	n := 0
	c.NewID = func() string {
		n++
		return fmt.Sprintf("txn-%d", n)
	}
	return c
}

func reviewed(description string) models.CandidateTransaction {
	return models.CandidateTransaction{
		Date:              time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:            decimal.RequireFromString("45.00"),
		Description:       description,
		Type:              models.TypeExpense,
		SuggestedCategory: "Shopping",
	}
}

func TestCommitIsolatesFailures(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore(), failOn: map[string]bool{"Item D": true}}
	coordinator := newTestCoordinator(store)

	req := Request{
		Filename: "statement.pdf",
		Transactions: []models.CandidateTransaction{
			reviewed("Item A"), reviewed("Item B"), reviewed("Item C"),
			reviewed("Item D"), reviewed("Item E"),
		},
	}

	result, err := coordinator.Commit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, Summary{Total: 5, Created: 4, Failed: 1}, result.Summary)

	require.Len(t, result.Created, 4)
	assert.Equal(t, "Item A", result.Created[0].Description)
	assert.Equal(t, "Item B", result.Created[1].Description)
	assert.Equal(t, "Item C", result.Created[2].Description)
	assert.Equal(t, "Item E", result.Created[3].Description)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Index)
	assert.Equal(t, "Item D", result.Errors[0].Transaction.Description)
	assert.Contains(t, result.Errors[0].Error, "disk full")

	// Only the successful records reached the store.
	assert.Len(t, store.Records(), 4)
}

func TestCommitBuildsRecords(t *testing.T) {
	store := NewMemoryStore()
	coordinator := newTestCoordinator(store)

	req := Request{
		Filename:     "january.pdf",
		Transactions: []models.CandidateTransaction{reviewed("Item A")},
	}

	result, err := coordinator.Commit(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Created, 1)

	record := result.Created[0]
	assert.Equal(t, "txn-1", record.ID)
	assert.Equal(t, "Item A", record.Description)
	assert.Equal(t, models.TypeExpense, record.Type)
	assert.Equal(t, "cat-shopping", record.CategoryID)
	assert.Equal(t, "Imported from PDF: january.pdf", record.Notes)
	assert.False(t, record.ExtractedFromReceipt)
}

func TestCommitUsesChosenCategoryOverSuggestion(t *testing.T) {
	coordinator := newTestCoordinator(NewMemoryStore())

	txn := reviewed("Item A")
	txn.Category = models.CategoryOther

	result, err := coordinator.Commit(context.Background(), Request{
		Filename:     "statement.pdf",
		Transactions: []models.CandidateTransaction{txn},
	})
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.Equal(t, "cat-other", result.Created[0].CategoryID)
}

func TestCommitEmptyBatch(t *testing.T) {
	coordinator := newTestCoordinator(NewMemoryStore())

	_, err := coordinator.Commit(context.Background(), Request{Filename: "empty.pdf"})
	assert.Error(t, err)
}

func TestCommitErrorsOmittedFromJSONWhenEmpty(t *testing.T) {
	coordinator := newTestCoordinator(NewMemoryStore())

	result, err := coordinator.Commit(context.Background(), Request{
		Filename:     "statement.pdf",
		Transactions: []models.CandidateTransaction{reviewed("Item A")},
	})
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"errors"`)
}
