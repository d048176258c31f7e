package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tokensite/internal/middleware"
	"tokensite/internal/store"
	"tokensite/internal/validator"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateUsername(req.Username); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidatePassword(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Uniqueness lives here, not in the store: scan before insert.
	if _, exists := h.users.FindUserByUsername(req.Username); exists {
		respondError(w, http.StatusConflict, "username already taken")
		return
	}
	if _, exists := h.users.FindUserByEmail(req.Email); exists {
		respondError(w, http.StatusConflict, "email already registered")
		return
	}
	user := h.users.CreateUser(store.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	respondJSON(w, http.StatusCreated, map[string]any{
		"token": strconv.FormatInt(user.ID, 10),
		"user":  user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	user, ok := h.users.FindUserByEmail(req.Email)
	if !ok || user.Password != req.Password {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token": strconv.FormatInt(user.ID, 10),
		"user":  user,
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
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
	respondJSON(w, http.StatusOK, user)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword hands the reset token straight back to the caller; there is
// no mail delivery in this backend.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	token, ok := h.users.GenerateResetToken(req.Email)
	if !ok {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"reset_token": token})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidatePassword(req.NewPassword); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.users.ResetPassword(req.Token, req.NewPassword) {
		respondError(w, http.StatusBadRequest, "invalid or expired token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
