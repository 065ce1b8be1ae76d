// Package receiptparser extracts merchant, amount, date, and line items from
// single-receipt OCR text using ordered regex heuristics. Everything here is
// best-effort: OCR output is noisy and the absence of any field is a valid
// result, never an error.
package receiptparser

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// Receipt amounts outside this open interval are treated as OCR noise
// (phone numbers, card digits, reference numbers).
var (
	minReceiptAmount = decimal.Zero
	maxReceiptAmount = decimal.NewFromInt(10000)
)

const (
	maxItems       = 20
	maxItemLength  = 100
	merchantWindow = 5
)

// amountPatterns are tried in priority order on every line. Labeled totals
// come first; bare currency values are the weakest signal.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total[:\s]*\$?(\d+\.?\d{0,2})`),
	regexp.MustCompile(`(?i)subtotal[:\s]*\$?(\d+\.?\d{0,2})`),
	regexp.MustCompile(`(?i)amount[:\s]*\$?(\d+\.?\d{0,2})`),
	regexp.MustCompile(`\$(\d+\.\d{2})`),
	regexp.MustCompile(`(\d+\.\d{2})`),
}

var dateFormats = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`), "1/2/2006"},
	{regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})`), "1-2-2006"},
	{regexp.MustCompile(`(\d{4}-\d{1,2}-\d{1,2})`), "2006-1-2"},
}

var (
	currencyLike = regexp.MustCompile(`\d+\.\d{2}`)
	dateLike     = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	itemLine     = regexp.MustCompile(`\$?\d+\.\d{2}`)
)

// Parser extracts receipt fields from OCR text. Now is injectable so tests
// can pin the year bound used for date acceptance.
type Parser struct {
	Now func() time.Time
}

// NewParser creates a Parser using the wall clock.
func NewParser() *Parser {
	return &Parser{Now: time.Now}
}

// Parse runs the heuristic extraction over raw OCR text.
func (p *Parser) Parse(ocrText string) *models.ReceiptExtraction {
	lines := splitLines(ocrText)

	result := &models.ReceiptExtraction{
		Items:   []string{},
		RawText: ocrText,
	}

	result.Merchant = extractMerchant(lines)
	result.PossibleAmounts = collectAmounts(lines)
	result.Amount = selectAmount(result.PossibleAmounts)
	result.Date = p.extractDate(lines)
	result.Items = extractItems(lines)

	return result
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractMerchant picks the first of the opening lines that carries no
// currency-like or date-like substring. Receipts almost always lead with the
// store name before any totals appear.
func extractMerchant(lines []string) string {
	window := lines
	if len(window) > merchantWindow {
		window = window[:merchantWindow]
	}
	for _, line := range window {
		if len(line) > 3 && !currencyLike.MatchString(line) && !dateLike.MatchString(line) {
			return line
		}
	}
	return ""
}

// collectAmounts scans every line against the ordered amount patterns. A line
// containing "total" tags its candidate high-confidence.
func collectAmounts(lines []string) []models.AmountCandidate {
	var candidates []models.AmountCandidate
	for _, line := range lines {
		for _, pattern := range amountPatterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			amount, ok := models.ParseAmount(match[1])
			if !ok {
				continue
			}
			if !amount.GreaterThan(minReceiptAmount) || !amount.LessThan(maxReceiptAmount) {
				continue
			}
			confidence := models.ConfidenceMedium
			if strings.Contains(strings.ToLower(line), "total") {
				confidence = models.ConfidenceHigh
			}
			candidates = append(candidates, models.AmountCandidate{
				Amount:     amount,
				Context:    line,
				Confidence: confidence,
			})
		}
	}
	return candidates
}

// selectAmount returns the first high-confidence candidate, else the numeric
// maximum of all candidates, else zero.
func selectAmount(candidates []models.AmountCandidate) decimal.Decimal {
	for _, c := range candidates {
		if c.Confidence == models.ConfidenceHigh {
			return c.Amount
		}
	}
	best := decimal.Zero
	for _, c := range candidates {
		if c.Amount.GreaterThan(best) {
			best = c.Amount
		}
	}
	return best
}

// extractDate returns the first date on the receipt whose year falls in
// (2000, current year].
func (p *Parser) extractDate(lines []string) time.Time {
	currentYear := p.Now().Year()
	for _, line := range lines {
		for _, df := range dateFormats {
			match := df.re.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			t, err := time.Parse(df.layout, match[1])
			if err != nil {
				continue
			}
			if t.Year() > 2000 && t.Year() <= currentYear {
				return t
			}
		}
	}
	return time.Time{}
}

// extractItems keeps lines that look like priced items, truncated to the
// first 20 under 100 characters.
func extractItems(lines []string) []string {
	items := []string{}
	for _, line := range lines {
		if itemLine.MatchString(line) && len(line) < maxItemLength {
			items = append(items, line)
			if len(items) == maxItems {
				break
			}
		}
	}
	return items
}
