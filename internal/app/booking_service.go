package app

import (
	"context"

	"github.com/HarshitTripathi3008/railway-reservation/internal/clock"
	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

type BookingRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	ReserveSeats(ctx context.Context, trainID string, count int) error
	CreateBooking(ctx context.Context, booking domain.Booking) error
}

// BookingService turns a validated booking request into a persisted booking,
// contingent on a successful seat reservation. The reservation and the insert
// share one transaction, so a failed insert rolls the decrement back.
type BookingService struct {
	repo      BookingRepository
	inventory *InventoryManager
	clock     clock.Clock
}

func NewBookingService(repo BookingRepository, inventory *InventoryManager, clk clock.Clock) *BookingService {
	return &BookingService{
		repo:      repo,
		inventory: inventory,
		clock:     clk,
	}
}

type CreateBookingInput struct {
	TrainID       string
	PassengerName string
	ContactInfo   string
	Seats         int
}

func (in CreateBookingInput) validate() error {
	if in.TrainID == "" {
		return domain.ErrTrainIDRequired
	}
	if in.PassengerName == "" {
		return domain.ErrPassengerNameRequired
	}
	if in.ContactInfo == "" {
		return domain.ErrContactInfoRequired
	}
	if in.Seats <= 0 {
		return domain.ErrInvalidSeatCount
	}
	return nil
}

func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (domain.Booking, error) {
	if err := in.validate(); err != nil {
		return domain.Booking{}, err
	}

	now := s.clock.Now()
	var result domain.Booking

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.inventory.ReserveSeats(txCtx, in.TrainID, in.Seats); err != nil {
			return err
		}

		booking := domain.Booking{
			ID:            newID(),
			TrainID:       in.TrainID,
			PassengerName: in.PassengerName,
			ContactInfo:   in.ContactInfo,
			Seats:         in.Seats,
			Status:        domain.BookingStatusBooked,
			CreatedAt:     now,
		}

		if err := s.repo.CreateBooking(txCtx, booking); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}

	return result, nil
}
