package llm

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ExtractJSONBlock returns the first well-formed-looking JSON object in the
// model's free-text response: everything from the first '{' to the last '}',
// inclusive (greedy brace matching). Models occasionally wrap the payload in
// markdown fences or prose; this recovers the object without caring.
func ExtractJSONBlock(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(s, "}")
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// flexDecimal is a decimal that unmarshals from either a JSON number or a
// numeric string. Models are inconsistent about quoting amounts.
type flexDecimal struct {
	decimal.Decimal
	present bool
}

func (f *flexDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		// Tolerate junk in a single field rather than failing the
		// whole response.
		return nil
	}
	f.Decimal = d
	f.present = true
	return nil
}

var _ json.Unmarshaler = (*flexDecimal)(nil)
