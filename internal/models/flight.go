package models

import (
	"time"

	"github.com/uptrace/bun"
)

type FlightStatus string

const (
	FlightUpcoming FlightStatus = "upcoming"
	FlightPassed   FlightStatus = "passed"
)

type SeatClass string

const (
	SeatEconomy  SeatClass = "economy"
	SeatComfort  SeatClass = "comfort"
	SeatBusiness SeatClass = "business"
)

func (c SeatClass) Valid() bool {
	switch c {
	case SeatEconomy, SeatComfort, SeatBusiness:
		return true
	}
	return false
}

type Flight struct {
	bun.BaseModel `bun:"table:flights"`

	ID            string       `bun:"id,pk" json:"id"`
	FlightNumber  string       `bun:"flight_number,notnull" json:"flightNumber"`
	Origin        string       `bun:"origin,notnull" json:"origin"`
	Destination   string       `bun:"destination,notnull" json:"destination"`
	DepartureDate time.Time    `bun:"departure_date,notnull" json:"departureDate"`
	ArrivalDate   time.Time    `bun:"arrival_date,notnull" json:"arrivalDate"`
	Duration      int          `bun:"duration,notnull" json:"duration"`
	CompanyID     string       `bun:"company_id,notnull" json:"companyId"`
	EconomyPrice  float64      `bun:"economy_price" json:"economyPrice"`
	EconomySeats  int          `bun:"economy_seats" json:"economySeats"`
	ComfortPrice  float64      `bun:"comfort_price" json:"comfortPrice"`
	ComfortSeats  int          `bun:"comfort_seats" json:"comfortSeats"`
	BusinessPrice float64      `bun:"business_price" json:"businessPrice"`
	BusinessSeats int          `bun:"business_seats" json:"businessSeats"`
	IsActive      bool         `bun:"is_active" json:"isActive"`
	Status        FlightStatus `bun:"status" json:"status"`
	CreatedAt     time.Time    `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt     time.Time    `bun:"updated_at,notnull" json:"updatedAt"`
}

// PriceFor returns the stored price for a seat class. The bool is
// false for an unknown class.
func (f *Flight) PriceFor(class SeatClass) (float64, bool) {
	switch class {
	case SeatEconomy:
		return f.EconomyPrice, true
	case SeatComfort:
		return f.ComfortPrice, true
	case SeatBusiness:
		return f.BusinessPrice, true
	}
	return 0, false
}

type CreateFlightRequest struct {
	FlightNumber  string    `json:"flightNumber"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departureDate"`
	ArrivalDate   time.Time `json:"arrivalDate"`
	Duration      int       `json:"duration"`
	CompanyID     string    `json:"companyId"`
	EconomyPrice  float64   `json:"economyPrice"`
	EconomySeats  int       `json:"economySeats"`
	ComfortPrice  float64   `json:"comfortPrice"`
	ComfortSeats  int       `json:"comfortSeats"`
	BusinessPrice float64   `json:"businessPrice"`
	BusinessSeats int       `json:"businessSeats"`
}

// UpdateFlightRequest carries a partial patch; nil fields are left
// untouched.
type UpdateFlightRequest struct {
	FlightNumber  *string    `json:"flightNumber,omitempty"`
	Origin        *string    `json:"origin,omitempty"`
	Destination   *string    `json:"destination,omitempty"`
	DepartureDate *time.Time `json:"departureDate,omitempty"`
	ArrivalDate   *time.Time `json:"arrivalDate,omitempty"`
	Duration      *int       `json:"duration,omitempty"`
	EconomyPrice  *float64   `json:"economyPrice,omitempty"`
	EconomySeats  *int       `json:"economySeats,omitempty"`
	ComfortPrice  *float64   `json:"comfortPrice,omitempty"`
	ComfortSeats  *int       `json:"comfortSeats,omitempty"`
	BusinessPrice *float64   `json:"businessPrice,omitempty"`
	BusinessSeats *int       `json:"businessSeats,omitempty"`
	IsActive      *bool      `json:"isActive,omitempty"`
}

type FlightSearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"` // YYYY-MM-DD, exact-day window
}
