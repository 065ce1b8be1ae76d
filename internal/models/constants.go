package models

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Category types. A category accepts income, expenses, or both.
const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
	CategoryTypeBoth    = "both"
)

// Extraction confidence tags, used for tie-breaking between candidates.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

// Extraction sources. The processing method reported for a statement equals
// the source of the transactions that won.
const (
	SourceLLM   = "llm"
	SourceRegex = "regex"
)

// CategoryOther is the guaranteed fallback category name. The resolver
// creates it on demand with type "both".
const CategoryOther = "Other"
