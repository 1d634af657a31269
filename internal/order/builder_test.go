package order_test

import (
	"testing"

	appErrors "github.com/adnanmuhammad4393/henna-storefront/internal/errors"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/adnanmuhammad4393/henna-storefront/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCustomer() models.CustomerDetails {
	return models.CustomerDetails{
		Name:        "Ayesha",
		PhoneNumber: "9876543210",
		Address:     "12 Rose Street",
		State:       "Kerala",
		District:    "Malappuram",
	}
}

func TestComputeTotal(t *testing.T) {

	t.Run("Empty sequence totals zero", func(t *testing.T) {
		assert.Equal(t, float64(0), order.ComputeTotal(nil))
	})

	t.Run("Sums price times quantity", func(t *testing.T) {
		items := []models.LineItem{
			{ID: "1", Name: "Henna Cone", Price: 150, Quantity: 2},
			{ID: "2", Name: "Henna Oil", Price: 250, Quantity: 1},
		}

		assert.Equal(t, float64(550), order.ComputeTotal(items))
	})

	t.Run("Additive over disjoint sequences", func(t *testing.T) {
		a := []models.LineItem{
			{ID: "1", Name: "Henna Cone", Price: 150, Quantity: 2},
			{ID: "2", Name: "Henna Oil", Price: 250, Quantity: 3},
		}
		b := []models.LineItem{
			{ID: "3", Name: "Gift Box", Price: 499, Quantity: 1},
		}

		combined := append(append([]models.LineItem{}, a...), b...)

		assert.Equal(t, order.ComputeTotal(a)+order.ComputeTotal(b), order.ComputeTotal(combined))
	})
}

func TestGenerateOrderID(t *testing.T) {

	t.Run("Has the ORDER prefix", func(t *testing.T) {
		assert.Regexp(t, `^ORDER-\d+$`, order.GenerateOrderID())
	})

	t.Run("Never repeats within a process", func(t *testing.T) {
		seen := make(map[string]bool)

		for range 200 {
			id := order.GenerateOrderID()
			assert.False(t, seen[id], "duplicate order id %s", id)
			seen[id] = true
		}
	})
}

func TestBuildOrderPayload(t *testing.T) {

	items := []models.LineItem{{ID: "1", Name: "Henna Cone", Price: 150, Quantity: 2}}

	t.Run("Success - two henna cones total 300", func(t *testing.T) {
		// Act
		payload, err := order.BuildOrderPayload(fullCustomer(), items, order.ComputeTotal(items))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, float64(300), payload.TotalAmount)
		assert.NotEmpty(t, payload.OrderID)
		assert.Equal(t, "Ayesha", payload.Customer.Name)
		require.Len(t, payload.Items, 1)
	})

	t.Run("Failure - empty cart", func(t *testing.T) {
		payload, err := order.BuildOrderPayload(fullCustomer(), nil, 0)

		assert.Nil(t, payload)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, appErr.Code)
	})

	t.Run("Failure - blank field is named", func(t *testing.T) {
		customer := fullCustomer()
		customer.PhoneNumber = "   "

		payload, err := order.BuildOrderPayload(customer, items, 300)

		assert.Nil(t, payload)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Message, "phoneNumber")
	})

	t.Run("Items are snapshotted at build time", func(t *testing.T) {
		source := append([]models.LineItem{}, items...)

		payload, err := order.BuildOrderPayload(fullCustomer(), source, 300)
		require.NoError(t, err)

		source[0].Quantity = 9

		assert.Equal(t, 2, payload.Items[0].Quantity)
	})

	t.Run("Markup is stripped from customer fields", func(t *testing.T) {
		customer := fullCustomer()
		customer.Name = "<script>alert(1)</script>Ayesha"

		payload, err := order.BuildOrderPayload(customer, items, 300)

		require.NoError(t, err)
		assert.Equal(t, "Ayesha", payload.Customer.Name)
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "300", order.FormatAmount(300))
	assert.Equal(t, "149.5", order.FormatAmount(149.5))
	assert.Equal(t, "99.99", order.FormatAmount(99.99))
}
