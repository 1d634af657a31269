// Package upi builds UPI deep-link URIs. Opening one launches the user's
// UPI app with the payment parameters prefilled; there is no callback, so
// the caller can never observe whether the payment completed.
package upi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const currencyCode = "INR"

// Notes is the JSON blob carried in the "notes" query parameter.
type Notes struct {
	OrderID      string `json:"orderId"`
	CustomerName string `json:"customerName"`
	// Comma-joined "name (xQty)" list of purchased items.
	Items string `json:"items"`
}

type Params struct {
	PayeeAddress    string
	PayeeName       string
	Amount          float64
	TransactionNote string
	// Transaction reference, the order id.
	Reference string
	Notes     Notes
}

// Link renders the upi://pay URI. Field set is fixed: pa, pn, am, cu, tn,
// tr and the URL-encoded JSON notes.
func Link(p Params) (string, error) {

	if p.PayeeAddress == "" {
		return "", errors.New("payee address is required")
	}

	if p.Amount <= 0 {
		return "", fmt.Errorf("amount must be positive, got %v", p.Amount)
	}

	notes, err := json.Marshal(p.Notes)
	if err != nil {
		return "", fmt.Errorf("failed to encode notes: %w", err)
	}

	values := url.Values{}
	values.Set("pa", p.PayeeAddress)
	values.Set("pn", p.PayeeName)
	values.Set("am", formatAmount(p.Amount))
	values.Set("cu", currencyCode)
	values.Set("tn", p.TransactionNote)
	values.Set("tr", p.Reference)
	values.Set("notes", string(notes))

	return "upi://pay?" + values.Encode(), nil
}

// Amount is a plain decimal string: no currency symbol, no trailing zeros.
func formatAmount(amount float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), ".")
}
