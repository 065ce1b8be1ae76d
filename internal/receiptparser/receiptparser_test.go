package receiptparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
}

func newTestParser() *Parser {
	return &Parser{Now: fixedNow}
}

func TestParseFullReceipt(t *testing.T) {
	text := `WALMART SUPERCENTER
123 Main St
01/15/2024
Milk 3.49
Bread 2.99
TOTAL: 6.48`

	result := newTestParser().Parse(text)

	assert.Equal(t, "WALMART SUPERCENTER", result.Merchant)
	assert.Equal(t, "6.48", result.Amount.String())
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), result.Date)
	assert.Len(t, result.Items, 3) // the TOTAL line is itself priced
	assert.Equal(t, text, result.RawText)
}

func TestLabeledTotalBeatsLargerAmount(t *testing.T) {
	// The labeled total must win even when a larger bare amount appears on
	// the receipt.
	text := `CORNER STORE
Fancy Item 99.99
Small Item 4.50
Total 18.48`

	result := newTestParser().Parse(text)

	require.True(t, result.HasAmount())
	assert.Equal(t, "18.48", result.Amount.String())
}

func TestNoTotalFallsBackToMaximum(t *testing.T) {
	text := `CORNER STORE
Item one 4.50
Item two 12.99
Item three 7.25`

	result := newTestParser().Parse(text)

	assert.Equal(t, "12.99", result.Amount.String())
}

func TestAmountBounds(t *testing.T) {
	// Amounts at or above 10000 are OCR noise (card digits, references).
	text := `SOME STORE
Reference 12000.00`

	result := newTestParser().Parse(text)

	assert.False(t, result.HasAmount())
	assert.Empty(t, result.PossibleAmounts)
}

func TestMerchantSkipsCurrencyAndDateLines(t *testing.T) {
	text := `01/15/2024
19.99
Joe's Diner
Eggs 5.00`

	result := newTestParser().Parse(text)

	assert.Equal(t, "Joe's Diner", result.Merchant)
}

func TestMerchantOnlyInFirstFiveLines(t *testing.T) {
	text := `1.00
2.00
3.00
4.00
5.00
Late Merchant Name`

	result := newTestParser().Parse(text)

	assert.Empty(t, result.Merchant)
}

func TestDateFormats(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected time.Time
	}{
		{name: "slash", line: "01/15/2024", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "dash", line: "1-15-2024", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "iso", line: "2024-01-15", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestParser().Parse("STORE NAME\n" + tt.line)
			assert.Equal(t, tt.expected, result.Date)
		})
	}
}

func TestDateYearBounds(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "too old", line: "01/15/1999"},
		{name: "year 2000 excluded", line: "01/15/2000"},
		{name: "future", line: "01/15/2030"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestParser().Parse("STORE NAME\n" + tt.line)
			assert.False(t, result.HasDate())
		})
	}
}

func TestItemCap(t *testing.T) {
	text := "BIG STORE\n"
	for i := 0; i < 30; i++ {
		text += "Item 1.99\n"
	}

	result := newTestParser().Parse(text)

	assert.Len(t, result.Items, 20)
}

func TestEmptyTextIsNotAnError(t *testing.T) {
	result := newTestParser().Parse("")

	assert.Empty(t, result.Merchant)
	assert.False(t, result.HasAmount())
	assert.False(t, result.HasDate())
	assert.Empty(t, result.Items)
}

func TestGenerateDescription(t *testing.T) {
	tests := []struct {
		name       string
		extraction models.ReceiptExtraction
		expected   string
	}{
		{
			name:       "merchant known",
			extraction: models.ReceiptExtraction{Merchant: "Starbucks"},
			expected:   "Purchase from Starbucks",
		},
		{
			name:       "first item fallback",
			extraction: models.ReceiptExtraction{Items: []string{"Latte 4.50"}},
			expected:   "Purchase - Latte",
		},
		{
			name:       "generic fallback",
			extraction: models.ReceiptExtraction{},
			expected:   "Receipt purchase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateDescription(&tt.extraction))
		})
	}
}

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		name     string
		merchant string
		expected string
	}{
		{name: "food", merchant: "Starbucks Coffee #1234", expected: "food"},
		{name: "gas", merchant: "SHELL OIL 57442", expected: "gas"},
		{name: "grocery", merchant: "Safeway Store", expected: "grocery"},
		{name: "pharmacy", merchant: "CVS/pharmacy", expected: "pharmacy"},
		{name: "retail", merchant: "Amazon.com", expected: "retail"},
		{name: "unknown merchant", merchant: "Bob's Widgets", expected: ""},
		{name: "no merchant", merchant: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extraction := models.ReceiptExtraction{Merchant: tt.merchant}
			assert.Equal(t, tt.expected, SuggestCategory(&extraction))
		})
	}
}
