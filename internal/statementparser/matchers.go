package statementparser

import (
	"regexp"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// CaptureClass classifies a regex capture as an amount or a description.
type CaptureClass int

const (
	// CaptureDescription marks a capture that is free text.
	CaptureDescription CaptureClass = iota
	// CaptureAmount marks a capture that parses as a monetary value.
	CaptureAmount
)

// ClassifyCapture decides whether a capture group holds an amount or a
// description. Several statement layouts put the amount before the
// description and several after; the templates assume one ordering and this
// classification corrects the assumption when the bank disagrees.
func ClassifyCapture(s string) CaptureClass {
	if _, ok := models.ParseAmount(s); ok {
		return CaptureAmount
	}
	return CaptureDescription
}

// amountGroup is the shared amount sub-pattern: optional sign, optional
// dollar sign, thousands separators, optional cents.
const amountGroup = `(-?\$?\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`

// bareAmountGroup matches amounts written without a currency symbol.
const bareAmountGroup = `(-?\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`

// LineMatcher is one statement-line template. Matchers are pure: a line
// either yields its three raw captures or nothing.
type LineMatcher struct {
	// Name identifies the template in logs and tests.
	Name string

	re *regexp.Regexp

	// amountFirst records which of the two non-date captures the template
	// assumes to be the amount.
	amountFirst bool
}

// Match applies the template to a line. On success it returns the raw date,
// amount, and description captures, swapping the latter two when
// classification shows the template's assumed ordering was wrong.
func (m *LineMatcher) Match(line string) (dateStr, amountStr, description string, ok bool) {
	match := m.re.FindStringSubmatch(line)
	if match == nil {
		return "", "", "", false
	}

	dateStr = match[1]
	if m.amountFirst {
		amountStr, description = match[2], match[3]
	} else {
		description, amountStr = match[2], match[3]
	}

	if ClassifyCapture(amountStr) != CaptureAmount {
		amountStr, description = description, amountStr
	}
	return dateStr, amountStr, description, true
}

// Matchers is the ordered template list covering the statement layouts seen
// in the wild. Declaration order is priority: the first template that matches
// a line wins, and later templates are never consulted for it.
var Matchers = []LineMatcher{
	{
		Name:        "us-date-amount-description",
		re:          regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+` + amountGroup + `\s+(.+)`),
		amountFirst: true,
	},
	{
		Name: "us-date-description-amount",
		re:   regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+` + amountGroup + `$`),
	},
	{
		Name:        "iso-date-amount-description",
		re:          regexp.MustCompile(`(\d{4}-\d{1,2}-\d{1,2})\s+` + amountGroup + `\s+(.+)`),
		amountFirst: true,
	},
	{
		Name: "us-date-columns",
		re:   regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s{2,}(.+?)\s{2,}` + amountGroup),
	},
	{
		Name: "dash-date-description-amount",
		re:   regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})\s+(.+?)\s+` + amountGroup + `$`),
	},
	{
		Name: "us-date-description-bare-amount",
		re:   regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+` + bareAmountGroup + `\s*$`),
	},
	{
		Name:        "us-date-bare-amount-description",
		re:          regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+` + bareAmountGroup + `\s+(.+)`),
		amountFirst: true,
	},
	{
		Name: "us-date-tab-separated",
		re:   regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\t+(.+?)\t+` + amountGroup),
	},
}
