package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountCandidate is a single amount found on a receipt line, kept with its
// surrounding context so the user can verify the pick.
type AmountCandidate struct {
	Amount     decimal.Decimal `json:"amount"`
	Context    string          `json:"context"`
	Confidence string          `json:"confidence"`
}

// ReceiptFields holds the four fields the model-based extractor returns for a
// single receipt. Zero values mean the field was absent from the response.
type ReceiptFields struct {
	Merchant string          `json:"merchant,omitempty"`
	Amount   decimal.Decimal `json:"amount,omitempty"`
	Date     time.Time       `json:"date,omitempty"`
	Category string          `json:"category,omitempty"`
}

// ReceiptExtraction is the best-effort result of parsing a single receipt.
// Absence of any field is valid: Merchant and Category are empty strings,
// Amount is zero, Date is the zero time. Extraction never fails outright.
type ReceiptExtraction struct {
	Merchant        string            `json:"merchant,omitempty"`
	Amount          decimal.Decimal   `json:"amount,omitempty"`
	Date            time.Time         `json:"date,omitempty"`
	Category        string            `json:"category,omitempty"`
	Items           []string          `json:"items"`
	PossibleAmounts []AmountCandidate `json:"possibleAmounts,omitempty"`
	RawText         string            `json:"rawText"`
}

// HasAmount reports whether an amount was extracted. Zero and negative
// amounts never survive extraction, so a positive value means present.
func (r *ReceiptExtraction) HasAmount() bool {
	return r.Amount.IsPositive()
}

// HasDate reports whether a date was extracted.
func (r *ReceiptExtraction) HasDate() bool {
	return !r.Date.IsZero()
}
