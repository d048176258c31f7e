package handlers

import (
	"encoding/json"
	"net/http"

	"tokensite/internal/middleware"
	"tokensite/internal/store"
)

func (h *Handler) ListRewardsTiers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.rewards.ListRewardsTiers())
}

func (h *Handler) MyRewards(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, ok := h.users.GetUser(userID)
	if !ok {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	payload := map[string]any{
		"points": user.RewardsPoints,
		"events": h.rewards.RewardsEventsByUser(userID),
	}
	if tier, ok := h.rewards.TierForUser(userID); ok {
		payload["tier"] = tier
	}
	respondJSON(w, http.StatusOK, payload)
}

type createRewardsEventRequest struct {
	EventType   string `json:"event_type"`
	Points      int64  `json:"points"`
	Description string `json:"description"`
}

func (h *Handler) CreateRewardsEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req createRewardsEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.EventType == "" {
		respondError(w, http.StatusBadRequest, "event_type is required")
		return
	}
	if req.Points < 0 {
		respondError(w, http.StatusBadRequest, "points must not be negative")
		return
	}
	event := h.rewards.CreateRewardsEvent(store.RewardsEventInput{
		UserID:      userID,
		EventType:   req.EventType,
		Points:      req.Points,
		Description: req.Description,
	})
	respondJSON(w, http.StatusCreated, event)
}
