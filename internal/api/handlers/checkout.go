package handlers

import (
	"net/http"

	"github.com/adnanmuhammad4393/henna-storefront/internal/checkout"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/adnanmuhammad4393/henna-storefront/internal/utils"
	"github.com/adnanmuhammad4393/henna-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	orchestrator *checkout.Orchestrator
	validator    *validator.Validate
}

func NewCheckoutHandler(orchestrator *checkout.Orchestrator) *CheckoutHandler {
	return &CheckoutHandler{
		orchestrator: orchestrator,
		validator:    validator.New(),
	}
}

// Open starts the purchase dialog. Refused with EMPTY_CART when the
// session's cart has no items.
func (h *CheckoutHandler) Open() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		attempt, err := h.orchestrator.Open(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, attempt)
	}
}

// SubmitDetails takes the purchase form and builds the order payload.
func (h *CheckoutHandler) SubmitDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var customer models.CustomerDetails
		if !utils.ParseAndValidate(r, w, &customer, h.validator) {
			return
		}

		attempt, err := h.orchestrator.SubmitDetails(r.Context(), sessionID, customer)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, attempt)
	}
}

// Confirm dispatches the attempt to the active payment strategy and
// returns the widget configuration or deep link.
func (h *CheckoutHandler) Confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		result, err := h.orchestrator.Confirm(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// GatewayCallback is the widget's success handler: the gateway reports the
// payment went through, carrying its payment reference.
func (h *CheckoutHandler) GatewayCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.GatewayCallbackRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		completed, err := h.orchestrator.HandleGatewaySuccess(r.Context(), sessionID, req.PaymentID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, completed)
	}
}

// GatewayDismiss is the widget's ondismiss hook: the user closed the
// payment modal without paying.
func (h *CheckoutHandler) GatewayDismiss() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		attempt, err := h.orchestrator.HandleGatewayDismiss(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, attempt)
	}
}

// State reports the session's checkout state.
func (h *CheckoutHandler) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]models.CheckoutState{
			"state": h.orchestrator.State(sessionID),
		})
	}
}
