package flight_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightly/internal/errs"
	"flightly/internal/flights"
	"flightly/internal/logger"
	"flightly/internal/models"
)

type Handler struct {
	FlightService *flights.FlightService
	Logger        *logger.Logger
}

func NewHandler(flightService *flights.FlightService, log *logger.Logger) *Handler {
	return &Handler{FlightService: flightService, Logger: log}
}

func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateFlight: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	flight, err := h.FlightService.Create(req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateFlight: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	h.Logger.LogFlight("CREATE", flight.ID, fmt.Sprintf("%s %s -> %s", flight.FlightNumber, flight.Origin, flight.Destination))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(flight); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateFlight: failed to encode response: %v", err))
	}
}

// ListFlights doubles as search: any of origin/destination/
// departureDate in the query switches to search semantics.
func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := models.FlightSearchRequest{
		Origin:        query.Get("origin"),
		Destination:   query.Get("destination"),
		DepartureDate: query.Get("departureDate"),
	}

	var (
		result []models.Flight
		err    error
	)
	if search.Origin != "" || search.Destination != "" || search.DepartureDate != "" {
		result, err = h.FlightService.Search(search)
	} else {
		result, err = h.FlightService.List()
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListFlights: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	if result == nil {
		result = []models.Flight{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListFlights: failed to encode response: %v", err))
	}
}

func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightId")

	flight, err := h.FlightService.Get(flightID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetFlight: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(flight); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetFlight: failed to encode response: %v", err))
	}
}

func (h *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightId")

	var req models.UpdateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateFlight: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	flight, err := h.FlightService.Update(flightID, req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateFlight: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	h.Logger.LogFlight("UPDATE", flight.ID, "flight updated")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(flight); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateFlight: failed to encode response: %v", err))
	}
}

func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightId")

	if err := h.FlightService.Delete(flightID); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteFlight: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	h.Logger.LogFlight("DELETE", flightID, "flight deleted")

	w.WriteHeader(http.StatusNoContent)
}
