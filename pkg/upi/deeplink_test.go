package upi_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/adnanmuhammad4393/henna-storefront/pkg/upi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {

	params := upi.Params{
		PayeeAddress:    "adnanmuhammad4393@okicici",
		PayeeName:       "Henna by Fathima",
		Amount:          300,
		TransactionNote: "Order: ORDER-1700000000000",
		Reference:       "ORDER-1700000000000",
		Notes: upi.Notes{
			OrderID:      "ORDER-1700000000000",
			CustomerName: "Ayesha",
			Items:        "Henna Cone (x2)",
		},
	}

	t.Run("Carries the fixed field set", func(t *testing.T) {
		// Act
		link, err := upi.Link(params)

		// Assert
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "upi://pay?"))
		assert.Contains(t, link, "am=300")
		assert.Contains(t, link, "tr=ORDER-1700000000000")
		assert.Contains(t, link, "cu=INR")

		parsed, err := url.Parse(link)
		require.NoError(t, err)

		query := parsed.Query()
		assert.Equal(t, "adnanmuhammad4393@okicici", query.Get("pa"))
		assert.Equal(t, "Henna by Fathima", query.Get("pn"))
		assert.Equal(t, "300", query.Get("am"))
		assert.Equal(t, "INR", query.Get("cu"))
		assert.Equal(t, "ORDER-1700000000000", query.Get("tr"))
	})

	t.Run("Notes decode to matching JSON", func(t *testing.T) {
		link, err := upi.Link(params)
		require.NoError(t, err)

		parsed, err := url.Parse(link)
		require.NoError(t, err)

		var notes upi.Notes
		require.NoError(t, json.Unmarshal([]byte(parsed.Query().Get("notes")), &notes))
		assert.Equal(t, "ORDER-1700000000000", notes.OrderID)
		assert.Equal(t, "Ayesha", notes.CustomerName)
		assert.Equal(t, "Henna Cone (x2)", notes.Items)
	})

	t.Run("Fractional amounts keep their decimals", func(t *testing.T) {
		fractional := params
		fractional.Amount = 149.5

		link, err := upi.Link(fractional)

		require.NoError(t, err)
		assert.Contains(t, link, "am=149.5")
	})

	t.Run("Failure - missing payee address", func(t *testing.T) {
		invalid := params
		invalid.PayeeAddress = ""

		_, err := upi.Link(invalid)

		assert.Error(t, err)
	})

	t.Run("Failure - non-positive amount", func(t *testing.T) {
		invalid := params
		invalid.Amount = 0

		_, err := upi.Link(invalid)

		assert.Error(t, err)
	})
}
