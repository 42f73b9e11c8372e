package db

import (
	"context"

	"github.com/uptrace/bun"

	"flightly/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) CreateBooking(booking models.Booking) error {
	_, err := d.Bun.NewInsert().Model(&booking).Exec(context.Background())
	return err
}

func (d *DB) GetBookingByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (d *DB) GetBookingByConfirmationID(code string) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("confirmation_id = ?", code).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (d *DB) ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (d *DB) ListBookingsByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (d *DB) UpdateBooking(booking models.Booking) error {
	_, err := d.Bun.NewUpdate().
		Model(&booking).
		Column("passenger_name", "passenger_email", "status",
			"cancelled_at", "refunded_at", "updated_at").
		Where("id = ?", booking.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteBooking(id string) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Booking)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// UserExists checks the service-layer referential rule; the store
// itself enforces no cross-table keys.
func (d *DB) UserExists(userID string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.User)(nil)).
		Where("id = ?", userID).
		Exists(context.Background())
}

func (d *DB) GetFlightByID(flightID string) (*models.Flight, error) {
	var flight models.Flight
	err := d.Bun.NewSelect().
		Model(&flight).
		Where("id = ?", flightID).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &flight, nil
}
