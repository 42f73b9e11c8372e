package flights

import (
	"testing"
	"time"

	"flightly/internal/models"
)

func TestStatusAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		departure time.Time
		want      models.FlightStatus
	}{
		{"departure in the future", now.Add(2 * time.Hour), models.FlightUpcoming},
		{"departure in the past", now.Add(-2 * time.Hour), models.FlightPassed},
		{"departure exactly now", now, models.FlightPassed},
		{"one second ahead", now.Add(time.Second), models.FlightUpcoming},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StatusAt(tc.departure, now)
			if got != tc.want {
				t.Errorf("StatusAt(%v, %v) = %q, want %q", tc.departure, now, got, tc.want)
			}
		})
	}
}
