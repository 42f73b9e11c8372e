package stats

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CompanyStats aggregates booking activity across a company's flights.
type CompanyStats struct {
	CompanyID       string              `json:"companyId"`
	TotalFlights    int                 `json:"totalFlights"`
	TotalBookings   int                 `json:"totalBookings"`
	TotalRevenue    float64             `json:"totalRevenue"`
	DailyBookings   []DailyBookingCount `json:"dailyBookings"`
	StatusBreakdown []StatusCount       `json:"statusBreakdown"`
}

type DailyBookingCount struct {
	Date     string  `bun:"booking_date" json:"date"`
	Bookings int     `bun:"bookings" json:"bookings"`
	Revenue  float64 `bun:"revenue" json:"revenue"`
}

type StatusCount struct {
	Status string `bun:"status" json:"status"`
	Count  int    `bun:"count" json:"count"`
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// GetCompanyStats returns flight and booking aggregates for one company.
// Revenue only counts bookings still in confirmed state.
func (s *Service) GetCompanyStats(companyID string) (*CompanyStats, error) {
	ctx := context.Background()
	stats := &CompanyStats{CompanyID: companyID}

	err := s.db.NewRaw(`
		SELECT COUNT(*)
		FROM flights
		WHERE company_id = ?`, companyID).Scan(ctx, &stats.TotalFlights)
	if err != nil {
		return nil, fmt.Errorf("failed to count flights: %w", err)
	}

	var totals struct {
		TotalBookings int     `bun:"total_bookings"`
		TotalRevenue  float64 `bun:"total_revenue"`
	}
	err = s.db.NewRaw(`
		SELECT
			COUNT(*) AS total_bookings,
			COALESCE(SUM(CASE WHEN b.status = 'confirmed' THEN b.price ELSE 0 END), 0) AS total_revenue
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE f.company_id = ?`, companyID).Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings: %w", err)
	}
	stats.TotalBookings = totals.TotalBookings
	stats.TotalRevenue = totals.TotalRevenue

	var daily []DailyBookingCount
	err = s.db.NewRaw(`
		SELECT
			DATE(b.created_at) AS booking_date,
			COUNT(*) AS bookings,
			COALESCE(SUM(CASE WHEN b.status = 'confirmed' THEN b.price ELSE 0 END), 0) AS revenue
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE f.company_id = ?
		GROUP BY DATE(b.created_at)
		ORDER BY booking_date`, companyID).Scan(ctx, &daily)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily bookings: %w", err)
	}
	if daily == nil {
		daily = []DailyBookingCount{}
	}
	stats.DailyBookings = daily

	var breakdown []StatusCount
	err = s.db.NewRaw(`
		SELECT
			b.status AS status,
			COUNT(*) AS count
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE f.company_id = ?
		GROUP BY b.status
		ORDER BY b.status`, companyID).Scan(ctx, &breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking statuses: %w", err)
	}
	if breakdown == nil {
		breakdown = []StatusCount{}
	}
	stats.StatusBreakdown = breakdown

	return stats, nil
}
