package auth_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"flightly/internal/auth"
	"flightly/internal/errs"
	"flightly/internal/logger"
	"flightly/internal/models"
	"flightly/internal/users"
)

type Handler struct {
	AuthService *auth.AuthService
	UserService *users.UserService
	Logger      *logger.Logger
}

func NewHandler(authService *auth.AuthService, userService *users.UserService, log *logger.Logger) *Handler {
	return &Handler{AuthService: authService, UserService: userService, Logger: log}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("Login: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.AuthService.Login(req)
	if err != nil {
		h.Logger.LogSecurity("AUTH", fmt.Sprintf("Login failed for %s: %v", req.Email, err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	h.Logger.LogSecurity("AUTH", fmt.Sprintf("Login succeeded for %s", req.Email))
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(session); err != nil {
		h.Logger.Error("API", fmt.Sprintf("Login: failed to encode response: %v", err))
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("Register: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.AuthService.Register(req)
	if err != nil {
		h.Logger.LogSecurity("AUTH", fmt.Sprintf("Registration failed for %s: %v", req.Email, err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	h.Logger.LogSecurity("AUTH", fmt.Sprintf("Registered new user %s", req.Email))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(session); err != nil {
		h.Logger.Error("API", fmt.Sprintf("Register: failed to encode response: %v", err))
	}
}

// Profile returns the account behind the current session.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Authorization header is required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.Get(userID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Profile: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(user.Public()); err != nil {
		h.Logger.Error("API", fmt.Sprintf("Profile: failed to encode response: %v", err))
	}
}
