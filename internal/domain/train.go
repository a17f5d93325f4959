package domain

import "time"

// Train represents a scheduled train with counter-based seat inventory.
// SeatsAvailable never goes negative; it is decremented only through the
// booking path's conditional update.
type Train struct {
	ID               string
	Name             string
	DepartureStation string
	ArrivalStation   string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	SeatsAvailable   int
}
