package handlers

import (
	"encoding/json"
	"net/http"

	"tokensite/internal/validator"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	existing, ok := h.subscribers.FindSubscriberByEmail(req.Email)
	if ok {
		if existing.IsActive {
			respondError(w, http.StatusConflict, "already subscribed")
			return
		}
		// Re-subscribing after an unsubscribe reactivates the old row.
		subscriber, _ := h.subscribers.ReactivateSubscriber(req.Email)
		respondJSON(w, http.StatusOK, subscriber)
		return
	}
	respondJSON(w, http.StatusCreated, h.subscribers.CreateSubscriber(req.Email))
}

func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if !h.subscribers.Unsubscribe(req.Email) {
		respondError(w, http.StatusNotFound, "subscription not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "unsubscribed"})
}
