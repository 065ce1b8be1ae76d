package receiptparser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

var priceToken = regexp.MustCompile(`\$?\d+\.\d{2}`)

// GenerateDescription builds a human-readable transaction description from
// an extraction: the merchant if known, else the first priced item, else a
// generic fallback.
func GenerateDescription(extraction *models.ReceiptExtraction) string {
	if extraction.Merchant != "" {
		return fmt.Sprintf("Purchase from %s", extraction.Merchant)
	}

	if len(extraction.Items) > 0 {
		firstItem := strings.TrimSpace(priceToken.ReplaceAllString(extraction.Items[0], ""))
		if firstItem != "" {
			return fmt.Sprintf("Purchase - %s", firstItem)
		}
	}

	return "Receipt purchase"
}

// merchantKeywords maps category hints to merchant-name keywords, evaluated
// in declared order so overlapping keywords resolve deterministically.
// Matching is case-insensitive substring over the extracted merchant.
var merchantKeywords = []struct {
	category string
	keywords []string
}{
	{"food", []string{"restaurant", "cafe", "pizza", "burger", "starbucks", "mcdonald", "subway", "food"}},
	{"gas", []string{"shell", "exxon", "bp", "chevron", "gas", "fuel"}},
	{"grocery", []string{"walmart", "target", "costco", "safeway", "kroger", "grocery", "market"}},
	{"pharmacy", []string{"cvs", "walgreens", "pharmacy", "drug"}},
	{"retail", []string{"amazon", "best buy", "home depot", "lowes", "mall"}},
}

// SuggestCategory returns a category hint derived from the merchant name, or
// an empty string when the merchant is unknown or matches nothing.
func SuggestCategory(extraction *models.ReceiptExtraction) string {
	if extraction.Merchant == "" {
		return ""
	}

	merchant := strings.ToLower(extraction.Merchant)
	for _, entry := range merchantKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(merchant, keyword) {
				return entry.category
			}
		}
	}
	return ""
}
