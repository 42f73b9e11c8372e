package flights_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"flightly/internal/errs"
	"flightly/internal/flights"
	"flightly/internal/models"
)

// Mock implementations
type MockFlightDB struct {
	mock.Mock
}

func (m *MockFlightDB) CreateFlight(flight models.Flight) error {
	args := m.Called(flight)
	return args.Error(0)
}

func (m *MockFlightDB) GetFlightByID(id string) (*models.Flight, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockFlightDB) ListFlights() ([]models.Flight, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightDB) UpdateFlight(flight models.Flight) error {
	args := m.Called(flight)
	return args.Error(0)
}

func (m *MockFlightDB) UpdateFlightStatus(id string, status models.FlightStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockFlightDB) DeleteFlight(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFlightDB) FlightNumberExists(flightNumber, companyID string) (bool, error) {
	args := m.Called(flightNumber, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightDB) SearchFlights(origin, destination string, dayStart, dayEnd *time.Time) ([]models.Flight, error) {
	args := m.Called(origin, destination, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

type MockSearchCache struct {
	mock.Mock
}

func (m *MockSearchCache) Get(origin, destination, departureDate string) ([]models.Flight, bool) {
	args := m.Called(origin, destination, departureDate)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]models.Flight), args.Bool(1)
}

func (m *MockSearchCache) Set(origin, destination, departureDate string, flights []models.Flight) {
	m.Called(origin, destination, departureDate, flights)
}

func (m *MockSearchCache) Invalidate() {
	m.Called()
}

func validCreateRequest() models.CreateFlightRequest {
	departure := time.Now().Add(48 * time.Hour)
	return models.CreateFlightRequest{
		FlightNumber:  "TJ101",
		Origin:        "Dushanbe",
		Destination:   "Istanbul",
		DepartureDate: departure,
		ArrivalDate:   departure.Add(5 * time.Hour),
		Duration:      300,
		CompanyID:     "company-1",
		EconomyPrice:  250,
		EconomySeats:  120,
	}
}

// Tests start here
func TestCreateFlight(t *testing.T) {
	mockDB := new(MockFlightDB)
	service := flights.NewFlightService(mockDB, nil)

	mockDB.On("FlightNumberExists", "TJ101", "company-1").Return(false, nil)
	mockDB.On("CreateFlight", mock.MatchedBy(func(f models.Flight) bool {
		return f.FlightNumber == "TJ101" && f.IsActive && f.Status == models.FlightUpcoming
	})).Return(nil)

	flight, err := service.Create(validCreateRequest())

	assert.NoError(t, err)
	assert.NotEmpty(t, flight.ID)
	assert.Equal(t, models.FlightUpcoming, flight.Status)
	assert.True(t, flight.IsActive)

	mockDB.AssertExpectations(t)
}

func TestCreateFlightValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.CreateFlightRequest)
		message string
	}{
		{
			"missing flight number",
			func(r *models.CreateFlightRequest) { r.FlightNumber = "" },
			"flightNumber is required",
		},
		{
			"missing origin",
			func(r *models.CreateFlightRequest) { r.Origin = "" },
			"origin is required",
		},
		{
			"past departure",
			func(r *models.CreateFlightRequest) {
				r.DepartureDate = time.Now().Add(-time.Hour)
			},
			"Departure date cannot be in the past",
		},
		{
			"arrival before departure",
			func(r *models.CreateFlightRequest) {
				r.ArrivalDate = r.DepartureDate.Add(-time.Hour)
			},
			"Arrival date must be after departure date",
		},
		{
			"same origin and destination",
			func(r *models.CreateFlightRequest) { r.Destination = "dushanbe" },
			"Origin and destination cannot be the same",
		},
		{
			"no sellable seat class",
			func(r *models.CreateFlightRequest) {
				r.EconomyPrice = 0
				r.EconomySeats = 0
			},
			"At least one seat class must have both price and seats",
		},
		{
			"zero duration",
			func(r *models.CreateFlightRequest) { r.Duration = 0 },
			"Duration must be positive",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := new(MockFlightDB)
			service := flights.NewFlightService(mockDB, nil)

			req := validCreateRequest()
			tc.mutate(&req)

			_, err := service.Create(req)

			assert.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.KindValidation), "expected validation kind, got %v", err)
			assert.Contains(t, err.Error(), tc.message)
			mockDB.AssertNotCalled(t, "CreateFlight", mock.Anything)
		})
	}
}

func TestCreateFlightDuplicateNumber(t *testing.T) {
	mockDB := new(MockFlightDB)
	service := flights.NewFlightService(mockDB, nil)

	mockDB.On("FlightNumberExists", "TJ101", "company-1").Return(true, nil)

	_, err := service.Create(validCreateRequest())

	assert.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindConflict), "expected conflict kind, got %v", err)
	assert.Equal(t, 409, errs.HTTPStatus(err))
	mockDB.AssertNotCalled(t, "CreateFlight", mock.Anything)
}

func TestCreateFlightSameNumberDifferentCompany(t *testing.T) {
	mockDB := new(MockFlightDB)
	service := flights.NewFlightService(mockDB, nil)

	mockDB.On("FlightNumberExists", "TJ101", "company-2").Return(false, nil)
	mockDB.On("CreateFlight", mock.Anything).Return(nil)

	req := validCreateRequest()
	req.CompanyID = "company-2"
	_, err := service.Create(req)

	assert.NoError(t, err)
	mockDB.AssertExpectations(t)
}

func TestListRefreshesStaleStatus(t *testing.T) {
	mockDB := new(MockFlightDB)
	service := flights.NewFlightService(mockDB, nil)

	// Stored as upcoming, but the departure is already in the past.
	stale := models.Flight{
		ID:            "stale",
		FlightNumber:  "TJ900",
		DepartureDate: time.Now().Add(-time.Hour),
		Status:        models.FlightUpcoming,
	}
	mockDB.On("ListFlights").Return([]models.Flight{stale}, nil)
	mockDB.On("UpdateFlightStatus", "stale", models.FlightPassed).Return(nil)

	result, err := service.List()

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, models.FlightPassed, result[0].Status)
	mockDB.AssertExpectations(t)
}

func TestSearchUsesCache(t *testing.T) {
	mockDB := new(MockFlightDB)
	mockCache := new(MockSearchCache)
	service := flights.NewFlightService(mockDB, mockCache)

	match := models.Flight{
		ID:            "f1",
		Origin:        "Dushanbe",
		Destination:   "Istanbul",
		DepartureDate: time.Now().Add(72 * time.Hour),
		IsActive:      true,
	}
	req := models.FlightSearchRequest{Origin: "dush", Destination: "ist"}

	// First search misses the cache, hits the database and fills the
	// cache; the second identical search is served from the cache.
	mockCache.On("Get", "dush", "ist", "").Return(nil, false).Once()
	mockDB.On("SearchFlights", "dush", "ist", (*time.Time)(nil), (*time.Time)(nil)).
		Return([]models.Flight{match}, nil).Once()
	mockCache.On("Set", "dush", "ist", "", []models.Flight{match}).Return().Once()
	mockCache.On("Get", "dush", "ist", "").Return([]models.Flight{match}, true).Once()

	first, err := service.Search(req)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := service.Search(req)
	assert.NoError(t, err)
	assert.Len(t, second, 1)

	mockDB.AssertNumberOfCalls(t, "SearchFlights", 1)
	mockCache.AssertExpectations(t)
}

func TestSearchRejectsBadDate(t *testing.T) {
	service := flights.NewFlightService(new(MockFlightDB), nil)

	_, err := service.Search(models.FlightSearchRequest{DepartureDate: "15-06-2025"})

	assert.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation), "expected validation kind, got %v", err)
}

func TestUpdateFlightRecomputesStatus(t *testing.T) {
	mockDB := new(MockFlightDB)
	mockCache := new(MockSearchCache)
	service := flights.NewFlightService(mockDB, mockCache)

	departure := time.Now().Add(48 * time.Hour)
	existing := &models.Flight{
		ID:            "f1",
		FlightNumber:  "TJ101",
		Origin:        "Dushanbe",
		Destination:   "Istanbul",
		DepartureDate: departure,
		ArrivalDate:   departure.Add(5 * time.Hour),
		Duration:      300,
		Status:        models.FlightUpcoming,
		IsActive:      true,
	}
	mockDB.On("GetFlightByID", "f1").Return(existing, nil)
	mockDB.On("UpdateFlight", mock.MatchedBy(func(f models.Flight) bool {
		return f.Status == models.FlightPassed
	})).Return(nil)
	mockCache.On("Invalidate").Return()

	past := time.Now().Add(-48 * time.Hour)
	pastArrival := past.Add(5 * time.Hour)
	updated, err := service.Update("f1", models.UpdateFlightRequest{
		DepartureDate: &past,
		ArrivalDate:   &pastArrival,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.FlightPassed, updated.Status)
	mockDB.AssertExpectations(t)
	mockCache.AssertCalled(t, "Invalidate")
}

func TestUpdateFlightCrossFieldRules(t *testing.T) {
	mockDB := new(MockFlightDB)
	service := flights.NewFlightService(mockDB, nil)

	departure := time.Now().Add(48 * time.Hour)
	existing := &models.Flight{
		ID:            "f1",
		Origin:        "Dushanbe",
		Destination:   "Istanbul",
		DepartureDate: departure,
		ArrivalDate:   departure.Add(5 * time.Hour),
		Duration:      300,
	}
	mockDB.On("GetFlightByID", "f1").Return(existing, nil)

	sameCity := "Dushanbe"
	_, err := service.Update("f1", models.UpdateFlightRequest{Destination: &sameCity})

	assert.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation), "expected validation kind, got %v", err)
	mockDB.AssertNotCalled(t, "UpdateFlight", mock.Anything)
}

func TestDeleteFlight(t *testing.T) {
	mockDB := new(MockFlightDB)
	mockCache := new(MockSearchCache)
	service := flights.NewFlightService(mockDB, mockCache)

	mockDB.On("GetFlightByID", "f1").Return(&models.Flight{ID: "f1"}, nil)
	mockDB.On("DeleteFlight", "f1").Return(nil)
	mockCache.On("Invalidate").Return()

	assert.NoError(t, service.Delete("f1"))
	mockDB.AssertExpectations(t)

	mockDB.On("GetFlightByID", "missing").Return(nil, errors.New("flight not found"))

	err := service.Delete("missing")

	assert.Error(t, err)
	assert.Equal(t, 404, errs.HTTPStatus(err))
}
