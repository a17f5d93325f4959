package domain

import "errors"

var (
	ErrTrainNotFound         = errors.New("train not found")
	ErrInsufficientSeats     = errors.New("not enough seats available")
	ErrInvalidSeatCount      = errors.New("invalid seat count")
	ErrTrainIDRequired       = errors.New("train id required")
	ErrPassengerNameRequired = errors.New("passenger name required")
	ErrContactInfoRequired   = errors.New("contact info required")
	ErrTrainNameRequired     = errors.New("train name required")
	ErrStationRequired       = errors.New("departure and arrival stations required")
	ErrInvalidCapacity       = errors.New("invalid seat capacity")
	ErrInvalidID             = errors.New("invalid id")
	ErrInvalidName           = errors.New("name must be between 2-50 characters")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrWeakPassword          = errors.New("password must be at least 8 characters, include uppercase, lowercase, number, and special character")
	ErrUserExists            = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
