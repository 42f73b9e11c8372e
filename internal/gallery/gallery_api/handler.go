package gallery_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightly/internal/errs"
	"flightly/internal/gallery"
	"flightly/internal/logger"
	"flightly/internal/models"
)

type Handler struct {
	GalleryService *gallery.GalleryService
	Logger         *logger.Logger
}

func NewHandler(galleryService *gallery.GalleryService, log *logger.Logger) *Handler {
	return &Handler{GalleryService: galleryService, Logger: log}
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateGalleryItem: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.GalleryService.Create(req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateGalleryItem: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateGalleryItem: failed to encode response: %v", err))
	}
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.GalleryService.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListGalleryItems: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	if result == nil {
		result = []models.GalleryItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListGalleryItems: failed to encode response: %v", err))
	}
}

func (h *Handler) ListActiveItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.GalleryService.ListActive()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListActiveGalleryItems: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	if result == nil {
		result = []models.GalleryItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListActiveGalleryItems: failed to encode response: %v", err))
	}
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	item, err := h.GalleryService.Get(itemID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetGalleryItem: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(item); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetGalleryItem: failed to encode response: %v", err))
	}
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	var req models.UpdateGalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateGalleryItem: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.GalleryService.Update(itemID, req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateGalleryItem: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(item); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateGalleryItem: failed to encode response: %v", err))
	}
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	if err := h.GalleryService.Delete(itemID); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteGalleryItem: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
