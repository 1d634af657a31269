package models

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one product entry with quantity inside the cart or the
// saved-for-later list. Quantity is always >= 1 while the item is present.
type LineItem struct {
	ID       string  `json:"id"       validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

func (i LineItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart holds the session's line items and saved-for-later items. An id is
// unique within each list, and never present in both at once.
type Cart struct {
	SessionID  uuid.UUID  `json:"session_id"`
	Items      []LineItem `json:"items"`
	SavedItems []LineItem `json:"saved_items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartSummary struct {
	ItemCount int        `json:"item_count"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type SaveForLaterRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}
