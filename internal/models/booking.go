package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRefunded  BookingStatus = "refunded"
)

// Terminal reports whether a booking can no longer transition.
// confirmed is the only non-terminal state.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingRefunded
}

type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID             string        `bun:"id,pk" json:"id"`
	UserID         string        `bun:"user_id,notnull" json:"userId"`
	FlightID       string        `bun:"flight_id,notnull" json:"flightId"`
	PassengerName  string        `bun:"passenger_name,notnull" json:"passengerName"`
	PassengerEmail string        `bun:"passenger_email,notnull" json:"passengerEmail"`
	SeatClass      SeatClass     `bun:"seat_class,notnull" json:"seatClass"`
	Price          float64       `bun:"price,notnull" json:"price"`
	ConfirmationID string        `bun:"confirmation_id,unique,notnull" json:"confirmationId"`
	Status         BookingStatus `bun:"status" json:"status"`
	QRCode         []byte        `bun:"qr_code" json:"qrCode,omitempty"`
	CancelledAt    *time.Time    `bun:"cancelled_at" json:"cancelledAt,omitempty"`
	RefundedAt     *time.Time    `bun:"refunded_at" json:"refundedAt,omitempty"`
	CreatedAt      time.Time     `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt      time.Time     `bun:"updated_at,notnull" json:"updatedAt"`
}

type CreateBookingRequest struct {
	UserID         string    `json:"userId"`
	FlightID       string    `json:"flightId"`
	PassengerName  string    `json:"passengerName"`
	PassengerEmail string    `json:"passengerEmail"`
	SeatClass      SeatClass `json:"seatClass"`
	Price          float64   `json:"price"`
}

type UpdateBookingRequest struct {
	PassengerName  *string `json:"passengerName,omitempty"`
	PassengerEmail *string `json:"passengerEmail,omitempty"`
}
