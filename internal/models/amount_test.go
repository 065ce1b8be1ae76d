package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "plain", input: "45.00", expected: "45", ok: true},
		{name: "currency symbol", input: "$1234.56", expected: "1234.56", ok: true},
		{name: "thousands separators", input: "1,234.56", expected: "1234.56", ok: true},
		{name: "negative with symbol", input: "-$1,234.56", expected: "-1234.56", ok: true},
		{name: "integer", input: "100", expected: "100", ok: true},
		{name: "whitespace", input: "  42.50  ", expected: "42.5", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "only symbol", input: "$", ok: false},
		{name: "text", input: "Coffee Shop", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, d.String())
			}
		})
	}
}
