package models

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutState string

type StrategyKind string

const (
	StateIdle              CheckoutState = "idle"
	StateFormEntry         CheckoutState = "form_entry"
	StateConfirming        CheckoutState = "confirming"
	StatePaymentInProgress CheckoutState = "payment_in_progress"
	StateSucceeded         CheckoutState = "succeeded"
	StateCancelled         CheckoutState = "cancelled"
	StateFailed            CheckoutState = "failed"

	StrategyGateway     StrategyKind = "gateway"
	StrategyUPIDeepLink StrategyKind = "upi"
)

// CustomerDetails is collected from the purchase form. Every field must be
// non-blank before an order payload can be built.
type CustomerDetails struct {
	Name        string `json:"name"         validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address     string `json:"address"      validate:"required"`
	State       string `json:"state"        validate:"required"`
	District    string `json:"district"     validate:"required"`
}

// OrderPayload is the canonical order record for one checkout attempt.
// Immutable after construction; Items is a snapshot taken at build time.
type OrderPayload struct {
	OrderID     string          `json:"order_id"`
	Customer    CustomerDetails `json:"customer"`
	Items       []LineItem      `json:"items"`
	TotalAmount float64         `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PaymentAttempt is the transient checkout state exposed to callers. No
// attempt history is retained once a terminal state is acknowledged.
type PaymentAttempt struct {
	SessionID uuid.UUID     `json:"session_id"`
	State     CheckoutState `json:"state"`
	Strategy  StrategyKind  `json:"strategy"`
	OrderID   string        `json:"order_id,omitempty"`
	StartedAt time.Time     `json:"started_at"`
}

type GatewayCallbackRequest struct {
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
}
