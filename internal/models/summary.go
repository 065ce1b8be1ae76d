package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is the inclusive span covered by a batch of transactions.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CategoryTotal accumulates the per-category slice of a summary.
type CategoryTotal struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Summary aggregates a batch of extracted transactions. It is derived,
// recomputed on demand, and never persisted.
//
// Invariants: NetBalance = TotalIncome - TotalExpenses, and the category
// totals sum to TotalIncome + TotalExpenses across all categories.
type Summary struct {
	TotalTransactions int                       `json:"totalTransactions"`
	TotalIncome       decimal.Decimal           `json:"totalIncome"`
	TotalExpenses     decimal.Decimal           `json:"totalExpenses"`
	NetBalance        decimal.Decimal           `json:"netBalance"`
	IncomeCount       int                       `json:"incomeCount"`
	ExpenseCount      int                       `json:"expenseCount"`
	DateRange         *DateRange                `json:"dateRange"`
	CategoryBreakdown map[string]*CategoryTotal `json:"categoryBreakdown"`
}
