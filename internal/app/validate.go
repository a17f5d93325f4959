package app

import (
	"strings"

	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

func validateName(name string) error {
	if len(name) < 2 || len(name) > 50 {
		return domain.ErrInvalidName
	}
	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 {
		return domain.ErrInvalidEmail
	}
	host := email[at+1:]
	if host == "" || strings.Contains(host, "@") || !strings.Contains(host, ".") {
		return domain.ErrInvalidEmail
	}
	if strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return domain.ErrInvalidEmail
	}
	if strings.ContainsAny(email, " \t") {
		return domain.ErrInvalidEmail
	}
	return nil
}

// validatePassword requires at least 8 characters with an uppercase letter, a
// lowercase letter, a digit, and a special character.
func validatePassword(password string) error {
	if len(password) < 8 {
		return domain.ErrWeakPassword
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return domain.ErrWeakPassword
	}
	return nil
}
