package flights

import (
	"time"

	"flightly/internal/models"
)

// StatusAt derives the lifecycle status of a flight departing at
// departure when observed at now. A flight departing exactly at now is
// already passed; only a strictly future departure is upcoming.
func StatusAt(departure, now time.Time) models.FlightStatus {
	if departure.After(now) {
		return models.FlightUpcoming
	}
	return models.FlightPassed
}
