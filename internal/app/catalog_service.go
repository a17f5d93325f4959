package app

import (
	"context"
	"time"

	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

type TrainRepository interface {
	CreateTrain(ctx context.Context, train domain.Train) error
	SearchTrains(ctx context.Context, departureStation, arrivalStation string) ([]domain.Train, error)
}

// CatalogService handles train creation and route search. No inventory
// coordination happens here; search results carry a point-in-time snapshot of
// seats_available.
type CatalogService struct {
	repo TrainRepository
}

func NewCatalogService(repo TrainRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

type AddTrainInput struct {
	Name             string
	DepartureStation string
	ArrivalStation   string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	SeatsAvailable   int
}

func (s *CatalogService) AddTrain(ctx context.Context, in AddTrainInput) (domain.Train, error) {
	if in.Name == "" {
		return domain.Train{}, domain.ErrTrainNameRequired
	}
	if in.DepartureStation == "" || in.ArrivalStation == "" {
		return domain.Train{}, domain.ErrStationRequired
	}
	if in.SeatsAvailable < 0 {
		return domain.Train{}, domain.ErrInvalidCapacity
	}

	train := domain.Train{
		ID:               newID(),
		Name:             in.Name,
		DepartureStation: in.DepartureStation,
		ArrivalStation:   in.ArrivalStation,
		DepartureTime:    in.DepartureTime,
		ArrivalTime:      in.ArrivalTime,
		SeatsAvailable:   in.SeatsAvailable,
	}

	if err := s.repo.CreateTrain(ctx, train); err != nil {
		return domain.Train{}, err
	}
	return train, nil
}

// SearchTrains returns trains matching both stations exactly. An empty result
// is not an error.
func (s *CatalogService) SearchTrains(ctx context.Context, departureStation, arrivalStation string) ([]domain.Train, error) {
	if departureStation == "" || arrivalStation == "" {
		return nil, domain.ErrStationRequired
	}
	return s.repo.SearchTrains(ctx, departureStation, arrivalStation)
}
