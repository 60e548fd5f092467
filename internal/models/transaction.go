package models

import (
	"strings"
	"unicode"
)

// Transaction is a single card transaction as the backend reports it.
// Records are never mutated after creation; a page of results is rebuilt
// wholesale on every fetch.
type Transaction struct {
	ID              int64   `json:"id"`
	CardNumber      string  `json:"cardNumber"` // masked, e.g. "Visa **** **** 4242"
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Timestamp       string  `json:"timestamp"` // RFC 3339
	MerchantName    string  `json:"merchantName"`
	Country         string  `json:"country"`
	Region          string  `json:"region"`
	City            string  `json:"city"`
	TransactionType string  `json:"transactionType"`
	IsFraudulent    bool    `json:"isFraudulent"`
	IsError         bool    `json:"isError"`
	ErrorMessage    string  `json:"errorMessage,omitempty"`
}

// MaskCard hides every digit of a card identifier except the last four.
// Already-masked values pass through unchanged.
func MaskCard(card string) string {
	digits := 0
	for _, r := range card {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits <= 4 {
		return card
	}

	toMask := digits - 4
	var b strings.Builder
	b.Grow(len(card))
	for _, r := range card {
		if unicode.IsDigit(r) && toMask > 0 {
			b.WriteRune('*')
			toMask--
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
