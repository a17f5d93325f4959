package app

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts credential hashing so unit tests can avoid bcrypt's
// cost.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

const bcryptCost = 10

type bcryptHasher struct{}

func NewBcryptHasher() PasswordHasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
