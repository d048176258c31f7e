package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tokensite/internal/middleware"
	"tokensite/internal/store"
	"tokensite/internal/wallet"
)

type connectWalletRequest struct {
	Address string `json:"address"`
}

func (h *Handler) ConnectWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req connectWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if owner, exists := h.users.FindUserByWalletAddress(req.Address); exists && owner.ID != userID {
		respondError(w, http.StatusConflict, "wallet address already connected")
		return
	}
	txID, err := h.wallet.Connect(r.Context(), req.Address)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidAddress) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "wallet connection failed")
		return
	}
	user, ok := h.users.UpdateUser(userID, store.UserUpdate{WalletAddress: &req.Address})
	if !ok {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"tx_id": txID,
		"user":  user,
	})
}
