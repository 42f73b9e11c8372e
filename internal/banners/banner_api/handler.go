package banner_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightly/internal/banners"
	"flightly/internal/errs"
	"flightly/internal/logger"
	"flightly/internal/models"
)

type Handler struct {
	BannerService *banners.BannerService
	Logger        *logger.Logger
}

func NewHandler(bannerService *banners.BannerService, log *logger.Logger) *Handler {
	return &Handler{BannerService: bannerService, Logger: log}
}

func (h *Handler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBanner: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	banner, err := h.BannerService.Create(req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBanner: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(banner); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBanner: failed to encode response: %v", err))
	}
}

func (h *Handler) ListBanners(w http.ResponseWriter, r *http.Request) {
	result, err := h.BannerService.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListBanners: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	if result == nil {
		result = []models.Banner{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListBanners: failed to encode response: %v", err))
	}
}

func (h *Handler) ListActiveBanners(w http.ResponseWriter, r *http.Request) {
	result, err := h.BannerService.ListActive()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListActiveBanners: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	if result == nil {
		result = []models.Banner{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListActiveBanners: failed to encode response: %v", err))
	}
}

func (h *Handler) GetBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "bannerId")

	banner, err := h.BannerService.Get(bannerID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetBanner: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(banner); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetBanner: failed to encode response: %v", err))
	}
}

func (h *Handler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "bannerId")

	var req models.UpdateBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateBanner: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	banner, err := h.BannerService.Update(bannerID, req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateBanner: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(banner); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateBanner: failed to encode response: %v", err))
	}
}

func (h *Handler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "bannerId")

	if err := h.BannerService.Delete(bannerID); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteBanner: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
