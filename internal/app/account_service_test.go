package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarshitTripathi3008/railway-reservation/internal/clock"
	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

func TestAccountService_Signup(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	validInput := func() SignupInput {
		return SignupInput{
			Name:     "Asha Verma",
			Email:    "asha@example.com",
			Password: "Sup3rSecret!",
		}
	}

	t.Run("creates active user with hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAccountService(repo, plainHasher{}, clock.NewFixed(now))

		user, err := svc.Signup(context.Background(), validInput())
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, domain.UserStatusActive, user.Status)
		assert.Equal(t, "hashed:Sup3rSecret!", user.PasswordHash)
		require.NotNil(t, user.LastLogin)
		assert.Equal(t, now, *user.LastLogin)
		assert.Len(t, repo.users, 1)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAccountService(repo, plainHasher{}, clock.NewFixed(now))

		_, err := svc.Signup(context.Background(), validInput())
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), validInput())
		require.ErrorIs(t, err, domain.ErrUserExists)
		assert.Len(t, repo.users, 1)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*SignupInput)
			wantErr error
		}{
			{"name too short", func(in *SignupInput) { in.Name = "A" }, domain.ErrInvalidName},
			{"email without at sign", func(in *SignupInput) { in.Email = "ashaexample.com" }, domain.ErrInvalidEmail},
			{"email without domain dot", func(in *SignupInput) { in.Email = "asha@example" }, domain.ErrInvalidEmail},
			{"password too short", func(in *SignupInput) { in.Password = "Ab1!" }, domain.ErrWeakPassword},
			{"password without digit", func(in *SignupInput) { in.Password = "Password!" }, domain.ErrWeakPassword},
			{"password without special", func(in *SignupInput) { in.Password = "Password1" }, domain.ErrWeakPassword},
			{"password without uppercase", func(in *SignupInput) { in.Password = "password1!" }, domain.ErrWeakPassword},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeUserRepo()
				svc := NewAccountService(repo, plainHasher{}, clock.NewFixed(now))

				in := validInput()
				tt.mutate(&in)
				_, err := svc.Signup(context.Background(), in)
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.users)
			})
		}
	})
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	later := now.Add(2 * time.Hour)

	setup := func(t *testing.T) (*AccountService, *fakeUserRepo) {
		repo := newFakeUserRepo()
		signupSvc := NewAccountService(repo, plainHasher{}, clock.NewFixed(now))
		_, err := signupSvc.Signup(context.Background(), SignupInput{
			Name:     "Asha Verma",
			Email:    "asha@example.com",
			Password: "Sup3rSecret!",
		})
		require.NoError(t, err)
		return NewAccountService(repo, plainHasher{}, clock.NewFixed(later)), repo
	}

	t.Run("valid credentials update last login", func(t *testing.T) {
		svc, repo := setup(t)

		user, err := svc.Login(context.Background(), LoginInput{
			Email:    "asha@example.com",
			Password: "Sup3rSecret!",
		})
		require.NoError(t, err)
		require.NotNil(t, user.LastLogin)
		assert.Equal(t, later, *user.LastLogin)

		stored := repo.users["asha@example.com"]
		require.NotNil(t, stored.LastLogin)
		assert.Equal(t, later, *stored.LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "asha@example.com",
			Password: "WrongPass1!",
		})
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "Sup3rSecret!",
		})
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(context.Background(), LoginInput{Email: "", Password: ""})
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

// plainHasher keeps unit tests fast; bcrypt itself is covered in password_test.go.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) UserExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user domain.User) error {
	if _, ok := f.users[user.Email]; ok {
		return domain.ErrUserExists
	}
	f.users[user.Email] = &user
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, userID string, at time.Time) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.LastLogin = &at
			return nil
		}
	}
	return domain.ErrInvalidCredentials
}
