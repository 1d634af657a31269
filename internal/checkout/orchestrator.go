package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adnanmuhammad4393/henna-storefront/internal/cart"
	"github.com/adnanmuhammad4393/henna-storefront/internal/errors"
	"github.com/adnanmuhammad4393/henna-storefront/internal/metrics"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/adnanmuhammad4393/henna-storefront/internal/notification"
	"github.com/adnanmuhammad4393/henna-storefront/internal/order"
	"github.com/adnanmuhammad4393/henna-storefront/pkg/whatsapp"
	"github.com/google/uuid"
)

// Orchestrator drives the purchase flow per session:
//
//	idle -> form_entry -> confirming -> payment_in_progress
//	     -> succeeded | cancelled | failed -> idle
//
// Terminal states are acknowledged immediately by dropping the attempt, so
// a session with no live attempt is idle. At most one attempt per session
// is in flight; none survives past its terminal state.
type Orchestrator struct {
	mu             sync.Mutex
	attempts       map[uuid.UUID]*attempt
	store          *cart.Store
	strategy       PaymentStrategy
	notifier       notification.Notifier
	whatsAppNumber string
	attemptTimeout time.Duration
}

type attempt struct {
	state      models.CheckoutState
	payload    *models.OrderPayload
	timer      *time.Timer
	startedAt  time.Time
	initiating bool
}

// ConfirmResult carries what the caller needs to hand the payment over to
// the external channel.
type ConfirmResult struct {
	OrderID    string               `json:"order_id"`
	State      models.CheckoutState `json:"state"`
	Initiation *Initiation          `json:"initiation"`
}

// CompletedOrder is the outcome of a successful gateway payment.
type CompletedOrder struct {
	Payload          *models.OrderPayload `json:"payload"`
	GatewayPaymentID string               `json:"gateway_payment_id"`
	Bill             string               `json:"bill"`
	WhatsAppLink     string               `json:"whatsapp_link"`
}

func NewOrchestrator(store *cart.Store, strategy PaymentStrategy, notifier notification.Notifier, whatsAppNumber string, attemptTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		attempts:       make(map[uuid.UUID]*attempt),
		store:          store,
		strategy:       strategy,
		notifier:       notifier,
		whatsAppNumber: whatsAppNumber,
		attemptTimeout: attemptTimeout,
	}
}

// State reports the session's current checkout state.
func (o *Orchestrator) State(sessionID uuid.UUID) models.CheckoutState {

	o.mu.Lock()
	defer o.mu.Unlock()

	if a, ok := o.attempts[sessionID]; ok {
		return a.state
	}

	return models.StateIdle
}

// Open starts a checkout attempt (the purchase dialog). Refused when the
// cart has no items; the refusal changes nothing.
func (o *Orchestrator) Open(ctx context.Context, sessionID uuid.UUID) (*models.PaymentAttempt, error) {

	snapshot, err := o.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.attempts[sessionID]; ok {
		return nil, errors.ConflictError("A checkout is already in progress for this session")
	}

	if len(snapshot.Items) == 0 {
		o.notifier.Notify(ctx, models.Notification{
			Kind:        models.NotificationInfo,
			Title:       "Cart Empty",
			Description: "Add items to your cart before checking out.",
		})

		return nil, errors.EmptyCartError("Your cart is empty")
	}

	a := &attempt{state: models.StateFormEntry, startedAt: time.Now()}
	o.attempts[sessionID] = a

	return o.describe(sessionID, a), nil
}

// SubmitDetails validates the purchase form and builds the order payload.
// A validation failure leaves the attempt in form_entry with nothing lost.
func (o *Orchestrator) SubmitDetails(ctx context.Context, sessionID uuid.UUID, customer models.CustomerDetails) (*models.PaymentAttempt, error) {

	snapshot, err := o.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	a, ok := o.attempts[sessionID]
	if !ok || a.state != models.StateFormEntry {
		return nil, errors.ConflictError("No checkout form is open for this session")
	}

	total := order.ComputeTotal(snapshot.Items)

	payload, err := order.BuildOrderPayload(customer, snapshot.Items, total)
	if err != nil {
		o.notifyError(ctx, "Check Your Details", err)

		return nil, err
	}

	a.payload = payload
	a.state = models.StateConfirming

	return o.describe(sessionID, a), nil
}

// Confirm hands the attempt to the configured payment strategy. The
// strategy call may hit the network, so it runs outside the lock and the
// attempt is re-checked once the call returns.
func (o *Orchestrator) Confirm(ctx context.Context, sessionID uuid.UUID) (*ConfirmResult, error) {

	o.mu.Lock()

	a, ok := o.attempts[sessionID]
	if !ok || a.state != models.StateConfirming || a.initiating {
		o.mu.Unlock()

		return nil, errors.ConflictError("No confirmed order is awaiting payment")
	}

	a.initiating = true
	payload := a.payload
	o.mu.Unlock()

	initiation, err := o.strategy.Initiate(ctx, payload)

	o.mu.Lock()

	a, ok = o.attempts[sessionID]
	if !ok || a.state != models.StateConfirming {
		o.mu.Unlock()

		return nil, errors.ConflictError("The checkout attempt is no longer awaiting payment")
	}

	a.initiating = false

	if err != nil {
		// The widget/gateway could not be opened. The attempt dies, the
		// cart is untouched and the session is usable again right away.
		a.state = models.StateFailed
		delete(o.attempts, sessionID)
		o.mu.Unlock()

		metrics.RecordCheckoutOutcome(string(o.strategy.Kind()), string(models.StateFailed))

		appErr := errors.PaymentInitializationError("The payment could not be started").WithError(err)
		o.notifyError(ctx, "Payment Failed", appErr)

		return nil, appErr
	}

	if !initiation.AwaitsCallback {
		// Fire-and-forget strategy: the link is out, nothing will ever
		// call back. Optimistically report initiation and return to idle.
		result := &ConfirmResult{
			OrderID:    payload.OrderID,
			State:      models.StateIdle,
			Initiation: initiation,
		}

		delete(o.attempts, sessionID)
		o.mu.Unlock()

		metrics.RecordCheckoutOutcome(string(o.strategy.Kind()), "initiated")

		o.notifier.Notify(ctx, models.Notification{
			Kind:        models.NotificationInfo,
			Title:       "Payment Initiated",
			Description: "Complete the payment in your UPI app. We cannot confirm completion from here.",
		})

		return result, nil
	}

	a.state = models.StatePaymentInProgress

	if o.attemptTimeout > 0 {
		a.timer = time.AfterFunc(o.attemptTimeout, func() {
			o.expire(sessionID)
		})
	}

	result := &ConfirmResult{
		OrderID:    payload.OrderID,
		State:      a.state,
		Initiation: initiation,
	}
	o.mu.Unlock()

	return result, nil
}

// HandleGatewaySuccess is the gateway widget's success callback. Emits the
// success notification, composes the bill, builds the WhatsApp hand-off
// link and clears the purchased items so the order cannot be placed twice.
func (o *Orchestrator) HandleGatewaySuccess(ctx context.Context, sessionID uuid.UUID, gatewayPaymentID string) (*CompletedOrder, error) {

	o.mu.Lock()

	a, ok := o.attempts[sessionID]
	if !ok || a.state != models.StatePaymentInProgress {
		o.mu.Unlock()

		return nil, errors.ConflictError("No payment is in progress for this session")
	}

	a.state = models.StateSucceeded
	a.stopTimer()
	payload := a.payload
	delete(o.attempts, sessionID)
	o.mu.Unlock()

	metrics.RecordCheckoutOutcome(string(o.strategy.Kind()), string(models.StateSucceeded))

	o.notifier.Notify(ctx, models.Notification{
		Kind:        models.NotificationSuccess,
		Title:       "Payment Completed",
		Description: "Your payment has been processed successfully.",
	})

	// The purchased items leave the cart on the transition itself, before
	// any hand-off bookkeeping, so the order cannot be placed twice.
	if err := o.store.Clear(ctx, sessionID); err != nil {
		o.notifyError(ctx, "Cart Not Cleared", err)
	}

	bill := order.GenerateBill(payload)

	completed := &CompletedOrder{
		Payload:          payload,
		GatewayPaymentID: gatewayPaymentID,
		Bill:             bill,
	}

	message := fmt.Sprintf("New order: %s\nTotal: ₹%s\n\nBill:\n%s",
		payload.OrderID, order.FormatAmount(payload.TotalAmount), bill)

	link, err := whatsapp.MessageLink(o.whatsAppNumber, message)
	if err != nil {
		// The payment already went through; a broken hand-off link is
		// reported, not returned as a failure.
		o.notifyError(ctx, "Bill Not Sent", errors.InternalError("The WhatsApp link could not be built").WithError(err))

		return completed, nil
	}

	completed.WhatsAppLink = link

	o.notifier.Notify(ctx, models.Notification{
		Kind:        models.NotificationSuccess,
		Title:       "Bill Sent",
		Description: "Your bill has been sent via WhatsApp.",
	})

	return completed, nil
}

// HandleGatewayDismiss is the widget's dismiss callback: the user closed
// the payment modal. Informational, not a failure; no bill is generated
// and the cart keeps its items.
func (o *Orchestrator) HandleGatewayDismiss(ctx context.Context, sessionID uuid.UUID) (*models.PaymentAttempt, error) {

	o.mu.Lock()

	a, ok := o.attempts[sessionID]
	if !ok || a.state != models.StatePaymentInProgress {
		o.mu.Unlock()

		return nil, errors.ConflictError("No payment is in progress for this session")
	}

	a.state = models.StateCancelled
	a.stopTimer()
	result := o.describe(sessionID, a)
	delete(o.attempts, sessionID)
	o.mu.Unlock()

	metrics.RecordCheckoutOutcome(string(o.strategy.Kind()), string(models.StateCancelled))

	o.notifyError(ctx, "Payment Cancelled", errors.PaymentCancelledError("Your payment process was cancelled."))

	return result, nil
}

// expire forces a stuck in-progress attempt to failed after the configured
// wait. The widget callback may still race in; losing that race is a
// no-op for it.
func (o *Orchestrator) expire(sessionID uuid.UUID) {

	o.mu.Lock()

	a, ok := o.attempts[sessionID]
	if !ok || a.state != models.StatePaymentInProgress {
		o.mu.Unlock()

		return
	}

	a.state = models.StateFailed
	delete(o.attempts, sessionID)
	o.mu.Unlock()

	metrics.RecordCheckoutOutcome(string(o.strategy.Kind()), "timeout")

	o.notifier.Notify(context.Background(), models.Notification{
		Kind:        models.NotificationError,
		Title:       "Payment Timed Out",
		Description: "No response was received from the payment gateway.",
	})
}

func (o *Orchestrator) describe(sessionID uuid.UUID, a *attempt) *models.PaymentAttempt {

	described := &models.PaymentAttempt{
		SessionID: sessionID,
		State:     a.state,
		Strategy:  o.strategy.Kind(),
		StartedAt: a.startedAt,
	}

	if a.payload != nil {
		described.OrderID = a.payload.OrderID
	}

	return described
}

func (o *Orchestrator) notifyError(ctx context.Context, title string, err error) {

	description := err.Error()
	if appErr, ok := errors.IsAppError(err); ok && appErr.Detail != "" {
		description = appErr.Detail
	}

	o.notifier.Notify(ctx, models.Notification{
		Kind:        models.NotificationError,
		Title:       title,
		Description: description,
	})
}

func (a *attempt) stopTimer() {
	if a.timer != nil {
		a.timer.Stop()
	}
}
