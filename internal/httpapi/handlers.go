package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/shopledger/internal/api"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/storefront"
	"github.com/rs/zerolog/log"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	Address       domain.Address `json:"shippingAddress"`
	PaymentMethod string         `json:"paymentMethod"`
}

type confirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	OrderID         string `json:"orderId"`
	Failed          bool   `json:"failed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.svc.Cart().State())
}

func (h *handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.svc.Cart().Clear()
	writeJSON(w, r, http.StatusOK, h.svc.Cart().State())
}

func (h *handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !readJSON(w, r, &req) {
		return
	}

	if req.ProductID == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("productId is empty"))
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.svc.AddToCart(r.Context(), req.ProductID, req.Quantity); err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.svc.Cart().State())
}

func (h *handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if !readJSON(w, r, &req) {
		return
	}

	h.svc.Cart().SetQuantity(chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, r, http.StatusOK, h.svc.Cart().State())
}

func (h *handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.svc.Cart().RemoveItem(chi.URLParam(r, "id"))
	writeJSON(w, r, http.StatusOK, h.svc.Cart().State())
}

func (h *handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.svc.Wishlist().State())
}

func (h *handler) clearWishlist(w http.ResponseWriter, r *http.Request) {
	h.svc.Wishlist().Clear()
	writeJSON(w, r, http.StatusOK, h.svc.Wishlist().State())
}

func (h *handler) addWishlistItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !readJSON(w, r, &req) {
		return
	}

	if req.ProductID == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("productId is empty"))
		return
	}

	if err := h.svc.AddToWishlist(r.Context(), req.ProductID); err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.svc.Wishlist().State())
}

func (h *handler) removeWishlistItem(w http.ResponseWriter, r *http.Request) {
	h.svc.Wishlist().RemoveItem(chi.URLParam(r, "id"))
	writeJSON(w, r, http.StatusOK, h.svc.Wishlist().State())
}

func (h *handler) moveToCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.svc.MoveToCart(id) {
		writeError(w, r, http.StatusNotFound, errors.New("item is not on the wishlist"))
		return
	}

	writeJSON(w, r, http.StatusOK, h.svc.Cart().State())
}

func (h *handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !readJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Checkout(r.Context(), req.Address, req.PaymentMethod)
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}

	writeJSON(w, r, http.StatusCreated, res)
}

func (h *handler) confirmCheckout(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if !readJSON(w, r, &req) {
		return
	}

	if req.PaymentIntentID == "" || req.OrderID == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("paymentIntentId and orderId are required"))
		return
	}

	confirm := h.svc.ConfirmPayment
	if req.Failed {
		confirm = h.svc.FailPayment
	}

	order, err := confirm(r.Context(), req.PaymentIntentID, req.OrderID)
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}

	writeJSON(w, r, http.StatusOK, order)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, storefront.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, storefront.ErrEmptyCart):
		return http.StatusConflict
	case api.IsNotFound(err):
		return http.StatusNotFound
	case api.IsUnauthorized(err):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, errors.New("request body is not valid JSON"))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	}
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("json.Encode")
	}
}
