package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary string into a decimal, tolerating a leading
// currency symbol and thousands separators ("-$1,234.56" -> -1234.56).
// Returns false when the cleaned string is not numeric.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
