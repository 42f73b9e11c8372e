package flights

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"flightly/internal/errs"
	"flightly/internal/models"
)

type DBLayer interface {
	CreateFlight(flight models.Flight) error
	GetFlightByID(id string) (*models.Flight, error)
	ListFlights() ([]models.Flight, error)
	UpdateFlight(flight models.Flight) error
	UpdateFlightStatus(id string, status models.FlightStatus) error
	DeleteFlight(id string) error
	FlightNumberExists(flightNumber, companyID string) (bool, error)
	SearchFlights(origin, destination string, dayStart, dayEnd *time.Time) ([]models.Flight, error)
}

// SearchCache is the read-side cache for search results. A nil cache
// disables caching entirely.
type SearchCache interface {
	Get(origin, destination, departureDate string) ([]models.Flight, bool)
	Set(origin, destination, departureDate string, flights []models.Flight)
	Invalidate()
}

type FlightService struct {
	DB    DBLayer
	Cache SearchCache
}

func NewFlightService(db DBLayer, cache SearchCache) *FlightService {
	return &FlightService{DB: db, Cache: cache}
}

func (s *FlightService) Create(req models.CreateFlightRequest) (*models.Flight, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	exists, err := s.DB.FlightNumberExists(req.FlightNumber, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate flight: %w", err)
	}
	if exists {
		return nil, errs.Conflict("Flight number %s already exists for this company", req.FlightNumber)
	}

	now := time.Now()
	flight := models.Flight{
		ID:            uuid.NewString(),
		FlightNumber:  req.FlightNumber,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ArrivalDate:   req.ArrivalDate,
		Duration:      req.Duration,
		CompanyID:     req.CompanyID,
		EconomyPrice:  req.EconomyPrice,
		EconomySeats:  req.EconomySeats,
		ComfortPrice:  req.ComfortPrice,
		ComfortSeats:  req.ComfortSeats,
		BusinessPrice: req.BusinessPrice,
		BusinessSeats: req.BusinessSeats,
		IsActive:      true,
		Status:        StatusAt(req.DepartureDate, now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.DB.CreateFlight(flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	s.invalidateCache()
	return &flight, nil
}

// validateCreate applies the create rules in order; the first failure
// wins.
func (s *FlightService) validateCreate(req models.CreateFlightRequest) error {
	required := []struct {
		name  string
		empty bool
	}{
		{"flightNumber", req.FlightNumber == ""},
		{"origin", req.Origin == ""},
		{"destination", req.Destination == ""},
		{"departureDate", req.DepartureDate.IsZero()},
		{"arrivalDate", req.ArrivalDate.IsZero()},
		{"companyId", req.CompanyID == ""},
	}
	for _, f := range required {
		if f.empty {
			return errs.Validation("%s is required", f.name)
		}
	}

	now := time.Now()
	if req.DepartureDate.Before(now) {
		return errs.Validation("Departure date cannot be in the past")
	}
	if !req.ArrivalDate.After(req.DepartureDate) {
		return errs.Validation("Arrival date must be after departure date")
	}
	if strings.EqualFold(req.Origin, req.Destination) {
		return errs.Validation("Origin and destination cannot be the same")
	}

	hasValidSeatClass := (req.EconomyPrice > 0 && req.EconomySeats > 0) ||
		(req.ComfortPrice > 0 && req.ComfortSeats > 0) ||
		(req.BusinessPrice > 0 && req.BusinessSeats > 0)
	if !hasValidSeatClass {
		return errs.Validation("At least one seat class must have both price and seats")
	}

	if req.Duration <= 0 {
		return errs.Validation("Duration must be positive")
	}
	return nil
}

// List returns all flights with their status refreshed against the
// current clock. A flight whose stored status is stale is updated in
// place before being returned; there is no background job, so the
// staleness window is the time between reads.
func (s *FlightService) List() ([]models.Flight, error) {
	flights, err := s.DB.ListFlights()
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}

	now := time.Now()
	for i := range flights {
		current := StatusAt(flights[i].DepartureDate, now)
		if flights[i].Status != current {
			if err := s.DB.UpdateFlightStatus(flights[i].ID, current); err != nil {
				return nil, fmt.Errorf("failed to refresh status for flight %s: %w", flights[i].ID, err)
			}
			flights[i].Status = current
		}
	}
	return flights, nil
}

func (s *FlightService) Get(id string) (*models.Flight, error) {
	flight, err := s.DB.GetFlightByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Flight with ID %s not found", id)
	}
	return flight, nil
}

// Search matches origin/destination as case-insensitive substrings and
// departureDate as an exact-day window. Only active flights are
// returned.
func (s *FlightService) Search(req models.FlightSearchRequest) ([]models.Flight, error) {
	var dayStart, dayEnd *time.Time
	if req.DepartureDate != "" {
		day, err := time.Parse("2006-01-02", req.DepartureDate)
		if err != nil {
			return nil, errs.Validation("departureDate must be formatted as YYYY-MM-DD")
		}
		end := day.AddDate(0, 0, 1)
		dayStart, dayEnd = &day, &end
	}

	if s.Cache != nil {
		if flights, ok := s.Cache.Get(req.Origin, req.Destination, req.DepartureDate); ok {
			return flights, nil
		}
	}

	flights, err := s.DB.SearchFlights(req.Origin, req.Destination, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}

	if s.Cache != nil {
		s.Cache.Set(req.Origin, req.Destination, req.DepartureDate, flights)
	}
	return flights, nil
}

func (s *FlightService) Update(id string, req models.UpdateFlightRequest) (*models.Flight, error) {
	flight, err := s.DB.GetFlightByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Flight with ID %s not found", id)
	}

	if req.FlightNumber != nil {
		flight.FlightNumber = *req.FlightNumber
	}
	if req.Origin != nil {
		flight.Origin = *req.Origin
	}
	if req.Destination != nil {
		flight.Destination = *req.Destination
	}
	if req.DepartureDate != nil {
		flight.DepartureDate = *req.DepartureDate
	}
	if req.ArrivalDate != nil {
		flight.ArrivalDate = *req.ArrivalDate
	}
	if req.Duration != nil {
		flight.Duration = *req.Duration
	}
	if req.EconomyPrice != nil {
		flight.EconomyPrice = *req.EconomyPrice
	}
	if req.EconomySeats != nil {
		flight.EconomySeats = *req.EconomySeats
	}
	if req.ComfortPrice != nil {
		flight.ComfortPrice = *req.ComfortPrice
	}
	if req.ComfortSeats != nil {
		flight.ComfortSeats = *req.ComfortSeats
	}
	if req.BusinessPrice != nil {
		flight.BusinessPrice = *req.BusinessPrice
	}
	if req.BusinessSeats != nil {
		flight.BusinessSeats = *req.BusinessSeats
	}
	if req.IsActive != nil {
		flight.IsActive = *req.IsActive
	}

	// Cross-field rules re-checked against the patched record.
	if !flight.ArrivalDate.After(flight.DepartureDate) {
		return nil, errs.Validation("Arrival date must be after departure date")
	}
	if strings.EqualFold(flight.Origin, flight.Destination) {
		return nil, errs.Validation("Origin and destination cannot be the same")
	}
	if flight.Duration <= 0 {
		return nil, errs.Validation("Duration must be positive")
	}

	flight.Status = StatusAt(flight.DepartureDate, time.Now())
	flight.UpdatedAt = time.Now()

	if err := s.DB.UpdateFlight(*flight); err != nil {
		return nil, fmt.Errorf("failed to update flight %s: %w", id, err)
	}

	s.invalidateCache()
	return flight, nil
}

func (s *FlightService) Delete(id string) error {
	if _, err := s.DB.GetFlightByID(id); err != nil {
		return errs.Wrap(errs.KindNotFound, err, "Flight with ID %s not found", id)
	}
	if err := s.DB.DeleteFlight(id); err != nil {
		return fmt.Errorf("failed to delete flight %s: %w", id, err)
	}
	// Deleting a flight leaves its bookings dangling; accepted
	// limitation, no cascading delete.
	s.invalidateCache()
	return nil
}

func (s *FlightService) invalidateCache() {
	if s.Cache != nil {
		s.Cache.Invalidate()
	}
}
