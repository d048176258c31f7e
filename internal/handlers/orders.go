package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tokensite/internal/middleware"
	"tokensite/internal/models"
	"tokensite/internal/services"
)

type placeOrderRequest struct {
	TradingPairID int64   `json:"trading_pair_id"`
	Type          string  `json:"type"`
	Side          string  `json:"side"`
	Price         float64 `json:"price"`
	Amount        float64 `json:"amount"`
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	result, err := h.trading.PlaceOrder(services.PlaceOrderRequest{
		UserID:        userID,
		TradingPairID: req.TradingPairID,
		Type:          req.Type,
		Side:          req.Side,
		Price:         req.Price,
		Amount:        req.Amount,
	})
	if err != nil {
		if errors.Is(err, services.ErrPairNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (h *Handler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, h.orders.OrdersByUser(userID))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, ok := h.orders.GetOrder(id)
	if !ok || order.UserID != userID {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, ok := h.orders.GetOrder(id)
	if !ok || order.UserID != userID {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	cancelled, ok := h.orders.CancelOrder(id)
	if !ok {
		respondError(w, http.StatusConflict, "order cannot be cancelled")
		return
	}
	respondJSON(w, http.StatusOK, cancelled)
}

func (h *Handler) OrdersByPair(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid pair id")
		return
	}
	status := r.URL.Query().Get("status")
	switch status {
	case "", models.OrderStatusOpen, models.OrderStatusPartial, models.OrderStatusFilled, models.OrderStatusCancelled:
	default:
		respondError(w, http.StatusBadRequest, "invalid status filter")
		return
	}
	respondJSON(w, http.StatusOK, h.orders.OrdersByPair(id, status))
}
