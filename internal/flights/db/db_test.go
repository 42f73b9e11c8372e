package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"flightly/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	if err := bunDB.ResetModel(context.Background(), (*models.Flight)(nil)); err != nil {
		t.Fatalf("Failed to create flights table: %v", err)
	}

	t.Cleanup(func() { bunDB.Close() })
	return &DB{Bun: bunDB}
}

func sampleFlight(id, number, origin, destination string, departure time.Time) models.Flight {
	return models.Flight{
		ID:            id,
		FlightNumber:  number,
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departure,
		ArrivalDate:   departure.Add(4 * time.Hour),
		Duration:      240,
		CompanyID:     "company-1",
		EconomyPrice:  200,
		EconomySeats:  100,
		IsActive:      true,
		Status:        models.FlightUpcoming,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestCreateAndGetFlight(t *testing.T) {
	db := setupTestDB(t)

	flight := sampleFlight("f1", "TJ101", "Dushanbe", "Istanbul", time.Now().Add(24*time.Hour))
	if err := db.CreateFlight(flight); err != nil {
		t.Fatalf("Failed to create flight: %v", err)
	}

	got, err := db.GetFlightByID("f1")
	if err != nil {
		t.Fatalf("Failed to get flight: %v", err)
	}
	if got.FlightNumber != "TJ101" {
		t.Errorf("Expected flight number TJ101, got %s", got.FlightNumber)
	}
	if got.Origin != "Dushanbe" {
		t.Errorf("Expected origin Dushanbe, got %s", got.Origin)
	}
}

func TestFlightNumberExists(t *testing.T) {
	db := setupTestDB(t)

	flight := sampleFlight("f1", "TJ101", "Dushanbe", "Istanbul", time.Now().Add(24*time.Hour))
	if err := db.CreateFlight(flight); err != nil {
		t.Fatalf("Failed to create flight: %v", err)
	}

	exists, err := db.FlightNumberExists("TJ101", "company-1")
	if err != nil {
		t.Fatalf("Exists check failed: %v", err)
	}
	if !exists {
		t.Error("Expected TJ101 to exist for company-1")
	}

	exists, err = db.FlightNumberExists("TJ101", "company-2")
	if err != nil {
		t.Fatalf("Exists check failed: %v", err)
	}
	if exists {
		t.Error("TJ101 should not exist for company-2")
	}
}

func TestSearchFlights(t *testing.T) {
	db := setupTestDB(t)

	day := time.Date(2027, 3, 10, 9, 0, 0, 0, time.UTC)
	flights := []models.Flight{
		sampleFlight("f1", "TJ101", "Dushanbe", "Istanbul", day),
		sampleFlight("f2", "TJ102", "Khujand", "Istanbul", day.Add(26*time.Hour)),
		sampleFlight("f3", "TJ103", "Dushanbe", "Moscow", day.Add(2*time.Hour)),
	}
	inactive := sampleFlight("f4", "TJ104", "Dushanbe", "Istanbul", day)
	inactive.IsActive = false
	flights = append(flights, inactive)

	for _, f := range flights {
		if err := db.CreateFlight(f); err != nil {
			t.Fatalf("Failed to create flight %s: %v", f.ID, err)
		}
	}

	// Case-insensitive substring match on both legs.
	result, err := db.SearchFlights("dush", "ist", nil, nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result) != 1 || result[0].ID != "f1" {
		t.Errorf("Expected only f1, got %v", result)
	}

	// Exact-day window excludes the next-day departure.
	dayStart := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	result, err = db.SearchFlights("", "istanbul", &dayStart, &dayEnd)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result) != 1 || result[0].ID != "f1" {
		t.Errorf("Expected only f1 in the day window, got %d flights", len(result))
	}

	// Empty filters return every active flight.
	result, err = db.SearchFlights("", "", nil, nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("Expected 3 active flights, got %d", len(result))
	}
}

func TestUpdateFlightStatus(t *testing.T) {
	db := setupTestDB(t)

	flight := sampleFlight("f1", "TJ101", "Dushanbe", "Istanbul", time.Now().Add(-time.Hour))
	if err := db.CreateFlight(flight); err != nil {
		t.Fatalf("Failed to create flight: %v", err)
	}

	if err := db.UpdateFlightStatus("f1", models.FlightPassed); err != nil {
		t.Fatalf("Failed to update status: %v", err)
	}

	got, err := db.GetFlightByID("f1")
	if err != nil {
		t.Fatalf("Failed to get flight: %v", err)
	}
	if got.Status != models.FlightPassed {
		t.Errorf("Expected status passed, got %s", got.Status)
	}
}

func TestDeleteFlight(t *testing.T) {
	db := setupTestDB(t)

	flight := sampleFlight("f1", "TJ101", "Dushanbe", "Istanbul", time.Now().Add(24*time.Hour))
	if err := db.CreateFlight(flight); err != nil {
		t.Fatalf("Failed to create flight: %v", err)
	}

	if err := db.DeleteFlight("f1"); err != nil {
		t.Fatalf("Failed to delete flight: %v", err)
	}

	if _, err := db.GetFlightByID("f1"); err == nil {
		t.Error("Expected an error fetching a deleted flight")
	}
}
