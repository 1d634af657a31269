package handlers

import (
	"net/http"

	"github.com/adnanmuhammad4393/henna-storefront/internal/cart"
	"github.com/adnanmuhammad4393/henna-storefront/internal/catalog"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/adnanmuhammad4393/henna-storefront/internal/order"
	"github.com/adnanmuhammad4393/henna-storefront/internal/utils"
	"github.com/adnanmuhammad4393/henna-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	store     *cart.Store
	catalog   *catalog.Catalog
	validator *validator.Validate
}

func NewCartHandler(store *cart.Store, catalog *catalog.Catalog) *CartHandler {
	return &CartHandler{
		store:     store,
		catalog:   catalog,
		validator: validator.New(),
	}
}

// CreateSession starts a new storefront session with an empty cart.
func (h *CartHandler) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusCreated, h.store.CreateSession(r.Context()))
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		snapshot, err := h.store.Get(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

// Summary feeds the header badge and dropdown: count, lines and total.
func (h *CartHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		snapshot, err := h.store.Get(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.CartSummary{
			ItemCount: len(snapshot.Items),
			Items:     snapshot.Items,
			Total:     order.ComputeTotal(snapshot.Items),
		})
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalog.Get(req.ProductID)
		if err != nil {
			response.Error(w, err)

			return
		}

		snapshot, err := h.store.AddToCart(r.Context(), sessionID, product.LineItem())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		snapshot, err := h.store.RemoveFromCart(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		snapshot, err := h.store.UpdateQuantity(r.Context(), sessionID, req.ProductID, req.Quantity)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) SaveForLater() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.SaveForLaterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalog.Get(req.ProductID)
		if err != nil {
			response.Error(w, err)

			return
		}

		snapshot, err := h.store.SaveForLater(r.Context(), sessionID, product.LineItem())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) MoveToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, err := utils.SessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		snapshot, err := h.store.MoveToCart(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}
