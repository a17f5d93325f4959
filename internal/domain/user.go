package domain

import "time"

type UserStatus string

const (
	UserStatusActive UserStatus = "active"
)

// User represents a registered account. Bookings are keyed by passenger
// name/contact, not user identity.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Status       UserStatus
	LastLogin    *time.Time
}
