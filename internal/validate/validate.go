// Package validate filters extracted candidate transactions down to the ones
// safe to show the user for review. Rejections are counted, never raised:
// a bad line in a statement is a fact of life, not an error.
package validate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// MaxAmount is the upper bound on a single transaction. Anything above it is
// almost certainly a misparsed account number or balance.
var MaxAmount = decimal.NewFromInt(1_000_000)

// MaxAge is how far back a transaction date may lie.
const MaxAgeYears = 10

// Counts reports the outcome of a validation pass. The identity
// TotalExtracted - ValidTransactions = RejectedTransactions always holds.
type Counts struct {
	TotalExtracted       int `json:"totalExtracted"`
	ValidTransactions    int `json:"validTransactions"`
	RejectedTransactions int `json:"rejectedTransactions"`
}

// Validator checks candidate transactions against the validity invariants.
// Now is injectable so the date window is testable.
type Validator struct {
	Now func() time.Time
}

// NewValidator creates a Validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{Now: time.Now}
}

// Filter returns the candidates satisfying all invariants, in input order and
// unmodified, together with the pass counts. Running Filter on its own output
// returns the same batch (idempotence).
func (v *Validator) Filter(candidates []models.CandidateTransaction) ([]models.CandidateTransaction, Counts) {
	now := v.Now()
	oldest := now.AddDate(-MaxAgeYears, 0, 0)

	valid := make([]models.CandidateTransaction, 0, len(candidates))
	for _, c := range candidates {
		if v.isValid(c, oldest, now) {
			valid = append(valid, c)
		}
	}

	return valid, Counts{
		TotalExtracted:       len(candidates),
		ValidTransactions:    len(valid),
		RejectedTransactions: len(candidates) - len(valid),
	}
}

// isValid checks one candidate: positive amount no larger than MaxAmount, a
// description of at least 3 characters, and a date inside the inclusive
// [now - 10 years, now] window.
func (v *Validator) isValid(c models.CandidateTransaction, oldest, now time.Time) bool {
	if !c.Amount.IsPositive() || c.Amount.GreaterThan(MaxAmount) {
		return false
	}
	if len(c.Description) < 3 {
		return false
	}
	if c.Date.IsZero() {
		return false
	}
	if c.Date.Before(oldest) || c.Date.After(now) {
		return false
	}
	return true
}
