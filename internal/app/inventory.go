package app

import (
	"context"

	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

// InventoryRepository performs the seat decrement. Implementations must make
// the check-and-decrement indivisible with respect to concurrent calls on the
// same train: two reservations that would jointly oversell must not both
// succeed.
type InventoryRepository interface {
	ReserveSeats(ctx context.Context, trainID string, count int) error
}

// InventoryManager guards a train's seat counter. All decrements of
// seats_available go through ReserveSeats; nothing in the current scope ever
// increments it back.
type InventoryManager struct {
	repo InventoryRepository
}

func NewInventoryManager(repo InventoryRepository) *InventoryManager {
	return &InventoryManager{repo: repo}
}

// ReserveSeats durably reduces the train's available seats by count, or
// returns domain.ErrInsufficientSeats leaving the counter untouched.
// When called inside a repository transaction the decrement commits or rolls
// back with it.
func (m *InventoryManager) ReserveSeats(ctx context.Context, trainID string, count int) error {
	if trainID == "" {
		return domain.ErrTrainIDRequired
	}
	if count <= 0 {
		return domain.ErrInvalidSeatCount
	}
	return m.repo.ReserveSeats(ctx, trainID, count)
}
