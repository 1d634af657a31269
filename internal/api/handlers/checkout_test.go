package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adnanmuhammad4393/henna-storefront/internal/api/handlers"
	"github.com/adnanmuhammad4393/henna-storefront/internal/cart"
	"github.com/adnanmuhammad4393/henna-storefront/internal/checkout"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/adnanmuhammad4393/henna-storefront/internal/notification"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture(t *testing.T) (*handlers.CheckoutHandler, *cart.Store, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	notifier := notification.NewLogNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := cart.NewStore(notifier)
	session := store.CreateSession(ctx)

	cone, _ := testCatalog().Get("1")
	_, err := store.AddToCart(ctx, session.SessionID, cone.LineItem())
	require.NoError(t, err)
	_, err = store.AddToCart(ctx, session.SessionID, cone.LineItem())
	require.NoError(t, err)

	strategy := checkout.NewGatewayStrategy(nil, "rzp_test_key", "Henna by Fathima", "#16a34a", false)
	orchestrator := checkout.NewOrchestrator(store, strategy, notifier, "919656778058", 0)

	return handlers.NewCheckoutHandler(orchestrator), store, session.SessionID
}

func checkoutCustomer() models.CustomerDetails {
	return models.CustomerDetails{
		Name:        "Ayesha",
		PhoneNumber: "9876543210",
		Address:     "12 Rose Street",
		State:       "Kerala",
		District:    "Malappuram",
	}
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	handler, store, sessionID := newCheckoutFixture(t)

	// Open the purchase dialog.
	rec := httptest.NewRecorder()
	handler.Open()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout", nil, sessionID, nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	attempt := decodeData[models.PaymentAttempt](t, rec)
	assert.Equal(t, models.StateFormEntry, attempt.State)

	// Submit customer details.
	rec = httptest.NewRecorder()
	handler.SubmitDetails()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout/details", checkoutCustomer(), sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	attempt = decodeData[models.PaymentAttempt](t, rec)
	assert.Equal(t, models.StateConfirming, attempt.State)

	// Confirm: the widget config comes back.
	rec = httptest.NewRecorder()
	handler.Confirm()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout/confirm", nil, sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeData[checkout.ConfirmResult](t, rec)
	require.NotNil(t, result.Initiation.Widget)
	assert.Equal(t, int64(30000), result.Initiation.Widget.Amount)

	// Gateway success callback.
	rec = httptest.NewRecorder()
	handler.GatewayCallback()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout/callback", models.GatewayCallbackRequest{PaymentID: "pay_123"}, sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	completed := decodeData[checkout.CompletedOrder](t, rec)
	assert.Contains(t, completed.WhatsAppLink, result.OrderID)

	snapshot, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
}

func TestCheckoutOpenEmptyCartOverHTTP(t *testing.T) {
	handler, store, _ := newCheckoutFixture(t)

	empty := store.CreateSession(context.Background())

	rec := httptest.NewRecorder()
	handler.Open()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout", nil, empty.SessionID, nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPTY_CART")
}

func TestCheckoutDismissOverHTTP(t *testing.T) {
	handler, _, sessionID := newCheckoutFixture(t)

	rec := httptest.NewRecorder()
	handler.Open()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout", nil, sessionID, nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.SubmitDetails()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout/details", checkoutCustomer(), sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.Confirm()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout/confirm", nil, sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.GatewayDismiss()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout/dismiss", nil, sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	attempt := decodeData[models.PaymentAttempt](t, rec)
	assert.Equal(t, models.StateCancelled, attempt.State)
}

func TestSubmitDetailsValidationOverHTTP(t *testing.T) {
	handler, _, sessionID := newCheckoutFixture(t)

	rec := httptest.NewRecorder()
	handler.Open()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout", nil, sessionID, nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	incomplete := checkoutCustomer()
	incomplete.State = ""

	rec = httptest.NewRecorder()
	handler.SubmitDetails()(rec, jsonRequest(http.MethodPost, "/api/v1/checkout/details", incomplete, sessionID, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
