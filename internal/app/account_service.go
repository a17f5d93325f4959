package app

import (
	"context"
	"time"

	"github.com/HarshitTripathi3008/railway-reservation/internal/clock"
	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

type AccountRepository interface {
	UserExists(ctx context.Context, email string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

// AccountService handles signup and login. It shares the persistence gateway
// with the booking core but nothing in the booking path depends on it.
type AccountService struct {
	repo   AccountRepository
	hasher PasswordHasher
	clock  clock.Clock
}

func NewAccountService(repo AccountRepository, hasher PasswordHasher, clk clock.Clock) *AccountService {
	return &AccountService{
		repo:   repo,
		hasher: hasher,
		clock:  clk,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

func (s *AccountService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	if err := validateName(in.Name); err != nil {
		return domain.User{}, err
	}
	if err := validateEmail(in.Email); err != nil {
		return domain.User{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return domain.User{}, err
	}

	exists, err := s.repo.UserExists(ctx, in.Email)
	if err != nil {
		return domain.User{}, err
	}
	if exists {
		return domain.User{}, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.clock.Now()
	user := domain.User{
		ID:           newID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Status:       domain.UserStatusActive,
		LastLogin:    &now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// A concurrent signup with the same email may win the insert race;
		// the repository surfaces that as ErrUserExists.
		return domain.User{}, err
	}
	return user, nil
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AccountService) Login(ctx context.Context, in LoginInput) (domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	now := s.clock.Now()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return domain.User{}, err
	}
	user.LastLogin = &now
	return *user, nil
}
