// Package statementparser extracts multiple transactions from the raw text of
// a bank-statement PDF. Each line is run through an ordered list of regex
// templates with first-match-wins semantics; lines no template accepts are
// dropped silently. This keeps every template individually testable instead
// of burying the cascade in one parsing loop.
package statementparser

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

const minDescriptionLength = 3

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Keep word characters, spaces, hyphens, dots, and commas; everything
	// else is OCR/PDF noise.
	descriptionNoise = regexp.MustCompile(`[^\w\s\-.,]`)
)

// Parser extracts candidate transactions from statement text.
type Parser struct {
	// Now is injectable so tests can pin the year acceptance bound.
	Now    func() time.Time
	logger logging.Logger
}

// NewParser creates a Parser using the wall clock.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{Now: time.Now, logger: logger}
}

// Parse extracts every recognizable transaction line from the statement
// text, sorted ascending by date. Each result is tagged confidence=medium,
// source=regex, and carries its original line for audit.
func (p *Parser) Parse(text string) []models.CandidateTransaction {
	currentYear := p.Now().Year()
	var transactions []models.CandidateTransaction

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || skipLine(line) {
			continue
		}

		txn, ok := p.parseLine(line, currentYear)
		if !ok {
			continue
		}
		transactions = append(transactions, txn)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	p.logger.Debug("Statement parsed",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions
}

// skipLine filters header and non-transaction lines: column headers naming
// both date and amount, statement/balance boilerplate, and anything too short
// to hold a transaction.
func skipLine(line string) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "date") && strings.Contains(lower, "amount") {
		return true
	}
	if strings.Contains(lower, "statement") || strings.Contains(lower, "balance") {
		return true
	}
	return len(line) < 10
}

// parseLine tries each template in priority order until one yields a valid
// transaction or all fail.
func (p *Parser) parseLine(line string, currentYear int) (models.CandidateTransaction, bool) {
	for i := range Matchers {
		dateStr, amountStr, description, ok := Matchers[i].Match(line)
		if !ok {
			continue
		}

		date, ok := parseStatementDate(dateStr, currentYear)
		if !ok {
			continue
		}

		amount, ok := models.ParseAmount(amountStr)
		if !ok || amount.IsZero() {
			continue
		}

		// A negative literal means money out; statements that mark
		// debits with a sign leave credits unsigned.
		txnType := models.TypeIncome
		if strings.Contains(amountStr, "-") || amount.IsNegative() {
			txnType = models.TypeExpense
		}
		amount = amount.Abs()

		cleaned := CleanDescription(description)
		if len(cleaned) < minDescriptionLength {
			continue
		}

		return models.CandidateTransaction{
			Date:              date,
			Amount:            amount,
			Description:       cleaned,
			Type:              txnType,
			SuggestedCategory: SuggestCategory(cleaned),
			Confidence:        models.ConfidenceMedium,
			Source:            models.SourceRegex,
			RawLine:           line,
		}, true
	}
	return models.CandidateTransaction{}, false
}

// CleanDescription collapses whitespace runs, strips characters that are not
// word characters, spaces, or -.,  and trims the result.
func CleanDescription(description string) string {
	cleaned := whitespaceRun.ReplaceAllString(description, " ")
	cleaned = descriptionNoise.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
