package statementparser

import (
	"strings"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// descriptionKeywords maps built-in categories to the description keywords
// that suggest them, evaluated in declared order with first match winning.
var descriptionKeywords = []struct {
	category string
	keywords []string
}{
	{"Food & Dining", []string{
		"restaurant", "cafe", "pizza", "burger", "starbucks", "mcdonald", "subway",
		"food", "dining", "bakery", "diner", "kitchen", "grill", "bistro",
	}},
	{"Transportation", []string{
		"gas", "fuel", "uber", "lyft", "taxi", "metro", "bus", "train",
		"shell", "exxon", "bp", "chevron", "parking", "toll",
	}},
	{"Shopping", []string{
		"amazon", "target", "walmart", "costco", "store", "shop", "retail",
		"purchase", "buy", "mall", "market",
	}},
	{"Bills & Utilities", []string{
		"electric", "water", "gas bill", "internet", "phone", "cable",
		"utility", "bill", "payment", "service",
	}},
	{"Healthcare", []string{
		"doctor", "hospital", "medical", "pharmacy", "health", "dental",
		"cvs", "walgreens", "clinic", "medicine",
	}},
	{"Entertainment", []string{
		"movie", "theater", "netflix", "spotify", "game", "entertainment",
		"concert", "show", "ticket",
	}},
}

// SuggestCategory returns the built-in category whose keywords appear in the
// description (case-insensitive substring), defaulting to "Other".
func SuggestCategory(description string) string {
	desc := strings.ToLower(description)
	for _, entry := range descriptionKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(desc, keyword) {
				return entry.category
			}
		}
	}
	return models.CategoryOther
}
