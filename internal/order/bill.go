package order

import (
	"fmt"
	"strings"

	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
)

// GenerateBill renders the human-readable bill for an order payload.
// Deterministic: the same payload always yields the same text.
func GenerateBill(payload *models.OrderPayload) string {

	var b strings.Builder

	fmt.Fprintf(&b, "Order: %s\n", payload.OrderID)
	fmt.Fprintf(&b, "Customer: %s\n", payload.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", payload.Customer.PhoneNumber)
	fmt.Fprintf(&b, "Address: %s, %s, %s\n", payload.Customer.Address, payload.Customer.District, payload.Customer.State)
	b.WriteString("\nItems:\n")

	for _, item := range payload.Items {
		fmt.Fprintf(&b, "- %s x%d: ₹%s\n", item.Name, item.Quantity, FormatAmount(item.Subtotal()))
	}

	fmt.Fprintf(&b, "\nTotal: ₹%s\n", FormatAmount(payload.TotalAmount))

	return b.String()
}

// ItemSummary joins items as "name (xQty)" entries, comma separated. Used
// by the UPI notes blob and the order email.
func ItemSummary(items []models.LineItem) string {

	parts := make([]string, 0, len(items))

	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}

	return strings.Join(parts, ", ")
}
