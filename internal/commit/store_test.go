package commit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

func record(id, description string) models.TransactionRecord {
	return models.TransactionRecord{
		ID:          id,
		Amount:      decimal.RequireFromString("45.00"),
		Description: description,
		Type:        models.TypeExpense,
		CategoryID:  "cat-1",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Notes:       "Imported from PDF: statement.pdf",
	}
}

func TestCSVStoreAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	store := NewCSVStore(path, ',', nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, record("txn-1", "Coffee Shop")))
	require.NoError(t, store.Save(ctx, record("txn-2", "Payroll Deposit")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "ID")
	assert.Contains(t, content, "txn-1")
	assert.Contains(t, content, "Coffee Shop")
	assert.Contains(t, content, "txn-2")
	assert.Contains(t, content, "Payroll Deposit")
	assert.Contains(t, content, "2024-01-15")
	assert.Contains(t, content, "45.00")
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), record("txn-1", "Coffee Shop")))

	records := store.Records()
	records[0].Description = "mutated"

	assert.Equal(t, "Coffee Shop", store.Records()[0].Description)
}
