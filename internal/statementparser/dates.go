package statementparser

import (
	"strconv"
	"strings"
	"time"
)

// parseStatementDate parses a matched date capture. Slash and dash dates with
// a trailing four-digit year are ambiguous between month-first (US) and
// day-first (most bank exports elsewhere); the rule used here is "if the
// first component exceeds 12 it must be the day". Dates where both components
// are <=12 silently resolve to month-first, an accepted limitation of the
// format.
//
// Years outside [2000, currentYear] are rejected.
func parseStatementDate(dateStr string, currentYear int) (time.Time, bool) {
	var first, second, year int
	var ok bool

	switch {
	case strings.Contains(dateStr, "/"):
		first, second, year, ok = splitNumericDate(dateStr, "/")
	case strings.Contains(dateStr, "-"):
		parts := strings.Split(dateStr, "-")
		if len(parts) == 3 && len(parts[0]) == 4 {
			t, err := time.Parse("2006-1-2", dateStr)
			if err != nil {
				return time.Time{}, false
			}
			return validateYear(t, currentYear)
		}
		first, second, year, ok = splitNumericDate(dateStr, "-")
	default:
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}

	day, month := second, first
	if first > 12 {
		day, month = first, second
	}

	t, valid := makeDate(year, month, day)
	if !valid {
		return time.Time{}, false
	}
	return validateYear(t, currentYear)
}

func splitNumericDate(dateStr, sep string) (first, second, year int, ok bool) {
	parts := strings.Split(dateStr, sep)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if first, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if second, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if year, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	return first, second, year, true
}

// makeDate builds a UTC date and rejects impossible components instead of
// letting time.Date normalize them (Feb 31 would otherwise roll into March).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

func validateYear(t time.Time, currentYear int) (time.Time, bool) {
	if t.Year() < 2000 || t.Year() > currentYear {
		return time.Time{}, false
	}
	return t, true
}
