package order

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/adnanmuhammad4393/henna-storefront/internal/errors"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// Customer fields end up embedded in bill text, deep links and the
// WhatsApp message, so free text is stripped of any markup on the way in.
var sanitizer = bluemonday.StrictPolicy()

var (
	orderIDMu   sync.Mutex
	lastOrderID int64
)

// ComputeTotal sums price*quantity over all items. Empty input totals 0.
func ComputeTotal(items []models.LineItem) float64 {

	var total float64

	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}

// GenerateOrderID produces "ORDER-<unix-millis>". Within one process two
// calls never return the same value: a collision bumps the millisecond
// counter forward.
func GenerateOrderID() string {

	orderIDMu.Lock()
	defer orderIDMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastOrderID {
		now = lastOrderID + 1
	}

	lastOrderID = now

	return fmt.Sprintf("ORDER-%d", now)
}

// BuildOrderPayload assembles the canonical order record for one checkout
// attempt. Pure construction: the items slice is snapshotted and the
// payload never changes afterwards.
func BuildOrderPayload(customer models.CustomerDetails, items []models.LineItem, total float64) (*models.OrderPayload, error) {

	if len(items) == 0 {
		return nil, errors.EmptyCartError("Your cart is empty")
	}

	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	return &models.OrderPayload{
		OrderID:     GenerateOrderID(),
		Customer:    sanitizeCustomer(customer),
		Items:       append([]models.LineItem(nil), items...),
		TotalAmount: total,
		CreatedAt:   time.Now(),
	}, nil
}

func validateCustomer(customer models.CustomerDetails) error {

	fields := []struct {
		name  string
		value string
	}{
		{"name", customer.Name},
		{"phoneNumber", customer.PhoneNumber},
		{"address", customer.Address},
		{"state", customer.State},
		{"district", customer.District},
	}

	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return errors.AddValidationError(field.name, "must not be blank")
		}
	}

	return nil
}

func sanitizeCustomer(customer models.CustomerDetails) models.CustomerDetails {
	return models.CustomerDetails{
		Name:        sanitizeField(customer.Name),
		PhoneNumber: sanitizeField(customer.PhoneNumber),
		Address:     sanitizeField(customer.Address),
		State:       sanitizeField(customer.State),
		District:    sanitizeField(customer.District),
	}
}

func sanitizeField(value string) string {
	return strings.TrimSpace(sanitizer.Sanitize(value))
}

// FormatAmount renders a decimal amount with no currency symbol and no
// trailing zeros, the way the deep link and bill expect it.
func FormatAmount(amount float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), ".")
}
