package bookings

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"flightly/internal/errs"
	"flightly/internal/models"
	"flightly/internal/utils"
)

// refundWindow is the cutoff separating a refunded cancellation from a
// plain one, measured against the flight's departure.
const refundWindow = 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type DBLayer interface {
	CreateBooking(booking models.Booking) error
	GetBookingByID(id string) (*models.Booking, error)
	GetBookingByConfirmationID(code string) (*models.Booking, error)
	ListBookings() ([]models.Booking, error)
	ListBookingsByUser(userID string) ([]models.Booking, error)
	UpdateBooking(booking models.Booking) error
	DeleteBooking(id string) error
	UserExists(userID string) (bool, error)
	GetFlightByID(flightID string) (*models.Flight, error)
}

type EventPublisher interface {
	PublishBookingConfirmed(booking models.Booking) error
	PublishBookingCancelled(booking models.Booking) error
	PublishBookingRefunded(booking models.Booking) error
}

type BookingService struct {
	DB     DBLayer
	Events EventPublisher
}

func NewBookingService(db DBLayer, events EventPublisher) *BookingService {
	return &BookingService{DB: db, Events: events}
}

// Create validates and persists a new booking. Seat capacity is
// neither checked nor decremented anywhere in the system: seat totals
// on a flight are static display data, so concurrent bookings can
// oversell a cabin class. Known gap, carried over deliberately.
func (s *BookingService) Create(req models.CreateBookingRequest) (*models.Booking, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	confirmationID := utils.GenerateConfirmationCode()
	qr, err := GenerateETicket(confirmationID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate e-ticket QR: %w", err)
	}

	now := time.Now()
	booking := models.Booking{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		FlightID:       req.FlightID,
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		SeatClass:      req.SeatClass,
		Price:          req.Price,
		ConfirmationID: confirmationID,
		Status:         models.BookingConfirmed,
		QRCode:         qr,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.DB.CreateBooking(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Events != nil {
		if err := s.Events.PublishBookingConfirmed(booking); err != nil {
			fmt.Printf("Kafka publish error (booking confirmed): %v\n", err)
		}
	}

	return &booking, nil
}

func (s *BookingService) validateCreate(req models.CreateBookingRequest) error {
	required := []struct {
		name  string
		empty bool
	}{
		{"userId", req.UserID == ""},
		{"flightId", req.FlightID == ""},
		{"passengerName", req.PassengerName == ""},
		{"passengerEmail", req.PassengerEmail == ""},
		{"seatClass", req.SeatClass == ""},
		{"price", req.Price == 0},
	}
	for _, f := range required {
		if f.empty {
			return errs.Validation("%s is required", f.name)
		}
	}

	if _, err := uuid.Parse(req.UserID); err != nil {
		return errs.Validation("Invalid user ID format: %s", req.UserID)
	}
	if _, err := uuid.Parse(req.FlightID); err != nil {
		return errs.Validation("Invalid flight ID format: %s", req.FlightID)
	}

	exists, err := s.DB.UserExists(req.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up user %s: %w", req.UserID, err)
	}
	if !exists {
		return errs.NotFound("User with ID %s not found", req.UserID)
	}

	flight, err := s.DB.GetFlightByID(req.FlightID)
	if err != nil {
		return errs.Wrap(errs.KindNotFound, err, "Flight with ID %s not found", req.FlightID)
	}

	if !req.SeatClass.Valid() {
		return errs.Validation("Invalid seat class. Must be one of: economy, comfort, business")
	}

	// The client sends the price it displayed; it must match the
	// flight's stored price for the class exactly, or the request is
	// rejected as tampering.
	expected, _ := flight.PriceFor(req.SeatClass)
	if req.Price != expected {
		return errs.Validation("Price mismatch. Expected %v for %s class", expected, req.SeatClass)
	}

	if !emailPattern.MatchString(req.PassengerEmail) {
		return errs.Validation("Invalid email format")
	}

	return nil
}

// Cancel transitions a confirmed booking to refunded when the flight
// departs in 24h or more, otherwise to cancelled. Both outcomes are
// terminal.
func (s *BookingService) Cancel(id string) (*models.Booking, error) {
	booking, err := s.DB.GetBookingByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Booking not found")
	}
	if booking.Status.Terminal() {
		return nil, errs.Validation("Booking has already been %s", booking.Status)
	}

	flight, err := s.DB.GetFlightByID(booking.FlightID)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Flight not found")
	}

	now := time.Now()
	hoursUntilDeparture := flight.DepartureDate.Sub(now)

	refundEligible := hoursUntilDeparture >= refundWindow
	if refundEligible {
		booking.Status = models.BookingRefunded
		booking.RefundedAt = &now
	} else {
		booking.Status = models.BookingCancelled
	}
	booking.CancelledAt = &now
	booking.UpdatedAt = now

	if err := s.DB.UpdateBooking(*booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}

	if s.Events != nil {
		var publishErr error
		if refundEligible {
			publishErr = s.Events.PublishBookingRefunded(*booking)
		} else {
			publishErr = s.Events.PublishBookingCancelled(*booking)
		}
		if publishErr != nil {
			fmt.Printf("Kafka publish error (booking cancelled): %v\n", publishErr)
		}
	}

	return booking, nil
}

func (s *BookingService) List() ([]models.Booking, error) {
	bookings, err := s.DB.ListBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) Get(id string) (*models.Booking, error) {
	booking, err := s.DB.GetBookingByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Booking with ID %s not found", id)
	}
	return booking, nil
}

// GetByConfirmationID supports anonymous lookup by the 8 character
// confirmation code handed to the booking party.
func (s *BookingService) GetByConfirmationID(code string) (*models.Booking, error) {
	booking, err := s.DB.GetBookingByConfirmationID(code)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Booking with confirmation %s not found", code)
	}
	return booking, nil
}

func (s *BookingService) ListByUser(userID string) ([]models.Booking, error) {
	bookings, err := s.DB.ListBookingsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

func (s *BookingService) Update(id string, req models.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.DB.GetBookingByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Booking with ID %s not found", id)
	}

	if req.PassengerName != nil {
		if *req.PassengerName == "" {
			return nil, errs.Validation("passengerName cannot be empty")
		}
		booking.PassengerName = *req.PassengerName
	}
	if req.PassengerEmail != nil {
		if !emailPattern.MatchString(*req.PassengerEmail) {
			return nil, errs.Validation("Invalid email format")
		}
		booking.PassengerEmail = *req.PassengerEmail
	}
	booking.UpdatedAt = time.Now()

	if err := s.DB.UpdateBooking(*booking); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return booking, nil
}

func (s *BookingService) Delete(id string) error {
	if _, err := s.DB.GetBookingByID(id); err != nil {
		return errs.Wrap(errs.KindNotFound, err, "Booking with ID %s not found", id)
	}
	if err := s.DB.DeleteBooking(id); err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	return nil
}
