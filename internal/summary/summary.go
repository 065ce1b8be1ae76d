// Package summary computes aggregate statistics over a batch of extracted
// transactions: totals, counts, net balance, covered date range, and a
// per-category breakdown. Summaries are derived on demand and never stored.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// Aggregate computes the summary for a validated batch. An empty batch
// yields an all-zero summary with a nil date range rather than an error.
func Aggregate(transactions []models.CandidateTransaction) models.Summary {
	s := models.Summary{
		TotalTransactions: len(transactions),
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		NetBalance:        decimal.Zero,
		CategoryBreakdown: map[string]*models.CategoryTotal{},
	}

	if len(transactions) == 0 {
		return s
	}

	for _, txn := range transactions {
		if txn.Type == models.TypeIncome {
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
			s.IncomeCount++
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(txn.Amount)
			s.ExpenseCount++
		}

		category := txn.SuggestedCategory
		if category == "" {
			category = models.CategoryOther
		}
		bucket, ok := s.CategoryBreakdown[category]
		if !ok {
			bucket = &models.CategoryTotal{Total: decimal.Zero}
			s.CategoryBreakdown[category] = bucket
		}
		bucket.Total = bucket.Total.Add(txn.Amount)
		bucket.Count++
	}

	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)
	s.DateRange = dateRange(transactions)

	return s
}

func dateRange(transactions []models.CandidateTransaction) *models.DateRange {
	sorted := make([]models.CandidateTransaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return &models.DateRange{
		Start: sorted[0].Date,
		End:   sorted[len(sorted)-1].Date,
	}
}
