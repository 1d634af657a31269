package checkout

import (
	"context"
	"fmt"
	"math"

	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/adnanmuhammad4393/henna-storefront/internal/order"
	"github.com/adnanmuhammad4393/henna-storefront/pkg/razorpay"
	"github.com/adnanmuhammad4393/henna-storefront/pkg/upi"
)

// PaymentStrategy is one interchangeable way to collect payment. Exactly
// one strategy is active per deployment; the orchestrator never picks one
// at runtime.
type PaymentStrategy interface {
	Kind() models.StrategyKind
	// Initiate starts collection for the payload. When the returned
	// initiation awaits a callback the attempt stays in flight until the
	// gateway reports success or dismissal; otherwise the strategy is
	// fire-and-forget and the attempt is over once the link is handed out.
	Initiate(ctx context.Context, payload *models.OrderPayload) (*Initiation, error)
}

// Initiation is what a strategy hands back to the caller: either a widget
// configuration (gateway) or a deep link (UPI), never both.
type Initiation struct {
	Widget         *razorpay.CheckoutOptions `json:"widget,omitempty"`
	DeepLink       string                    `json:"deep_link,omitempty"`
	AwaitsCallback bool                      `json:"-"`
}

const currencyINR = "INR"

type gatewayStrategy struct {
	client      razorpay.Client
	keyID       string
	storeName   string
	themeColor  string
	createOrder bool
}

func NewGatewayStrategy(client razorpay.Client, keyID, storeName, themeColor string, createOrder bool) PaymentStrategy {
	return &gatewayStrategy{
		client:      client,
		keyID:       keyID,
		storeName:   storeName,
		themeColor:  themeColor,
		createOrder: createOrder,
	}
}

func (g *gatewayStrategy) Kind() models.StrategyKind {
	return models.StrategyGateway
}

// Initiate implements PaymentStrategy.
func (g *gatewayStrategy) Initiate(ctx context.Context, payload *models.OrderPayload) (*Initiation, error) {

	amount := int64(math.Round(payload.TotalAmount * 100))
	orderID := payload.OrderID

	if g.createOrder {
		gatewayID, err := g.client.CreateOrder(amount, currencyINR, payload.OrderID, map[string]interface{}{
			"orderId":      payload.OrderID,
			"customerName": payload.Customer.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("gateway order creation failed: %w", err)
		}

		orderID = gatewayID
	}

	options := &razorpay.CheckoutOptions{
		Key:         g.keyID,
		Amount:      amount,
		Currency:    currencyINR,
		Name:        g.storeName,
		Description: fmt.Sprintf("Order: %s", payload.OrderID),
		OrderID:     orderID,
		Prefill: razorpay.Prefill{
			Name:    payload.Customer.Name,
			Contact: payload.Customer.PhoneNumber,
		},
		Theme: razorpay.Theme{Color: g.themeColor},
	}

	return &Initiation{Widget: options, AwaitsCallback: true}, nil
}

type upiStrategy struct {
	payeeAddress string
	payeeName    string
}

func NewUPIStrategy(payeeAddress, payeeName string) PaymentStrategy {
	return &upiStrategy{payeeAddress: payeeAddress, payeeName: payeeName}
}

func (u *upiStrategy) Kind() models.StrategyKind {
	return models.StrategyUPIDeepLink
}

// Initiate implements PaymentStrategy. UPI has no completion callback:
// the link is handed out and nothing more is ever heard.
func (u *upiStrategy) Initiate(ctx context.Context, payload *models.OrderPayload) (*Initiation, error) {

	link, err := upi.Link(upi.Params{
		PayeeAddress:    u.payeeAddress,
		PayeeName:       u.payeeName,
		Amount:          payload.TotalAmount,
		TransactionNote: fmt.Sprintf("Order: %s", payload.OrderID),
		Reference:       payload.OrderID,
		Notes: upi.Notes{
			OrderID:      payload.OrderID,
			CustomerName: payload.Customer.Name,
			Items:        order.ItemSummary(payload.Items),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build UPI link: %w", err)
	}

	return &Initiation{DeepLink: link, AwaitsCallback: false}, nil
}
