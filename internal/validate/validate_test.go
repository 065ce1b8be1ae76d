package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return &Validator{Now: func() time.Time { return testNow }}
}

func candidate(amount string, description string, date time.Time) models.CandidateTransaction {
	return models.CandidateTransaction{
		Date:        date,
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		Type:        models.TypeExpense,
	}
}

func TestFilterBounds(t *testing.T) {
	recent := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input models.CandidateTransaction
		valid bool
	}{
		{name: "valid", input: candidate("45.00", "Coffee Shop", recent), valid: true},
		{name: "zero amount", input: candidate("0", "Coffee Shop", recent), valid: false},
		{name: "negative amount", input: candidate("-45.00", "Coffee Shop", recent), valid: false},
		{name: "amount at cap", input: candidate("1000000", "House Purchase", recent), valid: true},
		{name: "amount over cap", input: candidate("1000000.01", "House Purchase", recent), valid: false},
		{name: "short description", input: candidate("45.00", "ab", recent), valid: false},
		{name: "three char description", input: candidate("45.00", "abc", recent), valid: true},
		{name: "zero date", input: candidate("45.00", "Coffee Shop", time.Time{}), valid: false},
		{name: "date exactly now", input: candidate("45.00", "Coffee Shop", testNow), valid: true},
		{name: "date in future", input: candidate("45.00", "Coffee Shop", testNow.Add(24*time.Hour)), valid: false},
		{name: "date exactly ten years ago", input: candidate("45.00", "Coffee Shop", testNow.AddDate(-10, 0, 0)), valid: true},
		{name: "date beyond ten years", input: candidate("45.00", "Coffee Shop", testNow.AddDate(-10, 0, -1)), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, counts := newTestValidator().Filter([]models.CandidateTransaction{tt.input})
			assert.Equal(t, 1, counts.TotalExtracted)
			if tt.valid {
				assert.Len(t, valid, 1)
				assert.Equal(t, 1, counts.ValidTransactions)
				assert.Equal(t, 0, counts.RejectedTransactions)
			} else {
				assert.Empty(t, valid)
				assert.Equal(t, 0, counts.ValidTransactions)
				assert.Equal(t, 1, counts.RejectedTransactions)
			}
		})
	}
}

func TestFilterPreservesOrderAndContent(t *testing.T) {
	recent := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	input := []models.CandidateTransaction{
		candidate("10.00", "First Purchase", recent),
		candidate("0", "Rejected Purchase", recent),
		candidate("20.00", "Second Purchase", recent),
	}

	valid, counts := newTestValidator().Filter(input)

	require.Len(t, valid, 2)
	assert.Equal(t, "First Purchase", valid[0].Description)
	assert.Equal(t, "Second Purchase", valid[1].Description)
	assert.Equal(t, Counts{TotalExtracted: 3, ValidTransactions: 2, RejectedTransactions: 1}, counts)
	// Input is untouched.
	assert.Equal(t, "Rejected Purchase", input[1].Description)
}

func TestFilterIsIdempotent(t *testing.T) {
	recent := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	input := []models.CandidateTransaction{
		candidate("10.00", "First Purchase", recent),
		candidate("0", "Rejected Purchase", recent),
		candidate("20.00", "Second Purchase", recent),
	}

	v := newTestValidator()
	once, _ := v.Filter(input)
	twice, counts := v.Filter(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, 0, counts.RejectedTransactions)
}

func TestFilterEmptyBatch(t *testing.T) {
	valid, counts := newTestValidator().Filter(nil)

	assert.Empty(t, valid)
	assert.Equal(t, Counts{}, counts)
}
