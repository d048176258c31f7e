package handlers

import (
	"net/http"

	"tokensite/internal/models"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	user, ok := h.users.FindUserByUsername(username)
	if !ok {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"id":                   user.ID,
		"username":             user.Username,
		"referral_code":        user.ReferralCode,
		"rewards_points":       user.RewardsPoints,
		"total_trading_volume": user.TotalTradingVolume,
		"created_at":           user.CreatedAt,
	})
}

type leaderboardEntry struct {
	ID                 int64   `json:"id"`
	Username           string  `json:"username"`
	RewardsPoints      int64   `json:"rewards_points"`
	TotalTradingVolume float64 `json:"total_trading_volume"`
}

func (h *Handler) LeaderboardByPoints(w http.ResponseWriter, r *http.Request) {
	users := h.users.TopUsersByRewardsPoints(parseLimitQuery(r, 10))
	respondJSON(w, http.StatusOK, leaderboardEntries(users))
}

func (h *Handler) LeaderboardByVolume(w http.ResponseWriter, r *http.Request) {
	users := h.users.TopUsersByTradingVolume(parseLimitQuery(r, 10))
	respondJSON(w, http.StatusOK, leaderboardEntries(users))
}

func leaderboardEntries(users []models.User) []leaderboardEntry {
	entries := make([]leaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, leaderboardEntry{
			ID:                 user.ID,
			Username:           user.Username,
			RewardsPoints:      user.RewardsPoints,
			TotalTradingVolume: user.TotalTradingVolume,
		})
	}
	return entries
}
