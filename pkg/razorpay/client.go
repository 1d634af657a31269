// Package razorpay wraps the Razorpay gateway: the server-side order API
// and the configuration handed to the embedded checkout widget.
package razorpay

import (
	"errors"

	razorpay "github.com/razorpay/razorpay-go"
)

// CheckoutOptions is the configuration for the gateway's embedded payment
// widget. Amount is in minor currency units (paise).
type CheckoutOptions struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
	Theme       Theme   `json:"theme"`
}

type Prefill struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type Theme struct {
	Color string `json:"color"`
}

// Client is the gateway API surface the checkout flow depends on.
type Client interface {
	// CreateOrder registers an order with the gateway and returns the
	// gateway-assigned order id.
	CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error)
}

type apiClient struct {
	rzp *razorpay.Client
}

func NewClient(keyID, keySecret string) Client {
	return &apiClient{rzp: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder implements Client.
func (c *apiClient) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	if notes != nil {
		data["notes"] = notes
	}

	body, err := c.rzp.Order.Create(data, nil)
	if err != nil {
		return "", err
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", errors.New("order id missing in gateway response")
	}

	return id, nil
}
