package handlers

import (
	"net/http"

	"tokensite/internal/middleware"
)

func (h *Handler) ListMyTrades(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, h.trades.TradesByUser(userID))
}

func (h *Handler) TradesByPair(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid pair id")
		return
	}
	respondJSON(w, http.StatusOK, h.trades.TradesByPair(id))
}
