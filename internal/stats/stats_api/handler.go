package stats_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightly/internal/logger"
	"flightly/internal/stats"
)

type Handler struct {
	StatsService *stats.Service
	Logger       *logger.Logger
}

func NewHandler(statsService *stats.Service, log *logger.Logger) *Handler {
	return &Handler{StatsService: statsService, Logger: log}
}

func (h *Handler) GetCompanyStats(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyId")

	result, err := h.StatsService.GetCompanyStats(companyID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetCompanyStats: %v", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetCompanyStats: failed to encode response: %v", err))
	}
}
