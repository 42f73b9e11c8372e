package db

import (
	"context"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"flightly/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) CreateFlight(flight models.Flight) error {
	_, err := d.Bun.NewInsert().Model(&flight).Exec(context.Background())
	return err
}

func (d *DB) GetFlightByID(id string) (*models.Flight, error) {
	var flight models.Flight
	err := d.Bun.NewSelect().
		Model(&flight).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (d *DB) ListFlights() ([]models.Flight, error) {
	var flights []models.Flight
	err := d.Bun.NewSelect().
		Model(&flights).
		Order("departure_date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (d *DB) UpdateFlight(flight models.Flight) error {
	_, err := d.Bun.NewUpdate().
		Model(&flight).
		Column("flight_number", "origin", "destination", "departure_date",
			"arrival_date", "duration", "economy_price", "economy_seats",
			"comfort_price", "comfort_seats", "business_price", "business_seats",
			"is_active", "status", "updated_at").
		Where("id = ?", flight.ID).
		Exec(context.Background())
	return err
}

// UpdateFlightStatus persists a lazily recomputed status without
// touching the rest of the record.
func (d *DB) UpdateFlightStatus(id string, status models.FlightStatus) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Flight)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteFlight(id string) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Flight)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// FlightNumberExists checks the compound (flight_number, company_id)
// uniqueness rule before insert.
func (d *DB) FlightNumberExists(flightNumber, companyID string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Flight)(nil)).
		Where("flight_number = ?", flightNumber).
		Where("company_id = ?", companyID).
		Exists(context.Background())
}

// SearchFlights matches origin and destination as case-insensitive
// substrings, restricted to active flights, with an optional
// [dayStart, dayEnd) departure window.
func (d *DB) SearchFlights(origin, destination string, dayStart, dayEnd *time.Time) ([]models.Flight, error) {
	var flights []models.Flight
	q := d.Bun.NewSelect().
		Model(&flights).
		Where("is_active = ?", true)

	if origin != "" {
		q = q.Where("lower(origin) LIKE ?", "%"+strings.ToLower(origin)+"%")
	}
	if destination != "" {
		q = q.Where("lower(destination) LIKE ?", "%"+strings.ToLower(destination)+"%")
	}
	if dayStart != nil && dayEnd != nil {
		q = q.Where("departure_date >= ?", *dayStart).
			Where("departure_date < ?", *dayEnd)
	}

	err := q.Order("departure_date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return flights, nil
}
