package company_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightly/internal/companies"
	"flightly/internal/errs"
	"flightly/internal/logger"
	"flightly/internal/models"
)

type Handler struct {
	CompanyService *companies.CompanyService
	Logger         *logger.Logger
}

func NewHandler(companyService *companies.CompanyService, log *logger.Logger) *Handler {
	return &Handler{CompanyService: companyService, Logger: log}
}

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateCompany: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	company, err := h.CompanyService.Create(req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateCompany: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(company); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateCompany: failed to encode response: %v", err))
	}
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	result, err := h.CompanyService.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListCompanies: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	if result == nil {
		result = []models.Company{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListCompanies: failed to encode response: %v", err))
	}
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyId")

	company, err := h.CompanyService.Get(companyID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetCompany: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(company); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetCompany: failed to encode response: %v", err))
	}
}

func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyId")

	var req models.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateCompany: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	company, err := h.CompanyService.Update(companyID, req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateCompany: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(company); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateCompany: failed to encode response: %v", err))
	}
}

func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyId")

	if err := h.CompanyService.Delete(companyID); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteCompany: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
