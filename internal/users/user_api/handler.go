package user_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightly/internal/errs"
	"flightly/internal/logger"
	"flightly/internal/models"
	"flightly/internal/users"
)

type Handler struct {
	UserService *users.UserService
	Logger      *logger.Logger
}

func NewHandler(userService *users.UserService, log *logger.Logger) *Handler {
	return &Handler{UserService: userService, Logger: log}
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateUser: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Create(req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateUser: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(user.Public()); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateUser: failed to encode response: %v", err))
	}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.UserService.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListUsers: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	public := make([]models.PublicUser, 0, len(result))
	for i := range result {
		public = append(public, result[i].Public())
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(public); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListUsers: failed to encode response: %v", err))
	}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := h.UserService.Get(userID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetUser: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(user.Public()); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetUser: failed to encode response: %v", err))
	}
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateUser: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Update(userID, req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateUser: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(user.Public()); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateUser: failed to encode response: %v", err))
	}
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	if err := h.UserService.Delete(userID); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteUser: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
