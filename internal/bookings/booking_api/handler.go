package booking_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightly/internal/bookings"
	"flightly/internal/errs"
	"flightly/internal/logger"
	"flightly/internal/models"
	"flightly/internal/utils"
)

type Handler struct {
	BookingService *bookings.BookingService
	Logger         *logger.Logger
}

func NewHandler(bookingService *bookings.BookingService, log *logger.Logger) *Handler {
	return &Handler{BookingService: bookingService, Logger: log}
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.BookingService.Create(req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	h.Logger.LogBooking("CREATE", booking.ID, fmt.Sprintf("confirmation %s for flight %s", booking.ConfirmationID, booking.FlightID))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(booking); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: failed to encode response: %v", err))
	}
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	result, err := h.BookingService.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListBookings: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	if result == nil {
		result = []models.Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListBookings: failed to encode response: %v", err))
	}
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	booking, err := h.BookingService.Get(bookingID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetBooking: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(booking); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetBooking: failed to encode response: %v", err))
	}
}

// GetBookingByConfirmation is the anonymous lookup path; no session is
// required, the confirmation code is the credential.
func (h *Handler) GetBookingByConfirmation(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "confirmationId")

	booking, err := h.BookingService.GetByConfirmationID(code)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetBookingByConfirmation: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(booking); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetBookingByConfirmation: failed to encode response: %v", err))
	}
}

func (h *Handler) ListBookingsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}

	result, err := h.BookingService.ListByUser(userID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListBookingsByUser: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	if result == nil {
		result = []models.Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListBookingsByUser: failed to encode response: %v", err))
	}
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	booking, err := h.BookingService.Cancel(bookingID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CancelBooking: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	h.Logger.LogBooking("CANCEL", booking.ID, fmt.Sprintf("status=%s", booking.Status))

	message := "Booking cancelled"
	if booking.Status == models.BookingRefunded {
		message = "Booking cancelled and refunded"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(utils.SuccessResponse(message, booking)); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CancelBooking: failed to encode response: %v", err))
	}
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	var req models.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateBooking: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.BookingService.Update(bookingID, req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateBooking: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(booking); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateBooking: failed to encode response: %v", err))
	}
}

func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	if err := h.BookingService.Delete(bookingID); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteBooking: %v", err))
		http.Error(w, err.Error(), errs.HTTPStatus(err))
		return
	}
	h.Logger.LogBooking("DELETE", bookingID, "booking deleted")

	w.WriteHeader(http.StatusNoContent)
}
