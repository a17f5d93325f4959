package domain

import "time"

type BookingStatus string

const (
	BookingStatusBooked BookingStatus = "Booked"
)

// Booking represents an admitted reservation. A booking row exists iff the
// matching seat decrement on its train was committed.
type Booking struct {
	ID            string
	TrainID       string
	PassengerName string
	ContactInfo   string
	Seats         int
	Status        BookingStatus
	CreatedAt     time.Time
}
