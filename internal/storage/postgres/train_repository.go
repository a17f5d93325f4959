package postgres

import (
	"context"
	"fmt"

	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TrainRepository struct {
	pool *pgxpool.Pool
}

func NewTrainRepository(pool *pgxpool.Pool) *TrainRepository {
	return &TrainRepository{pool: pool}
}

func (r *TrainRepository) CreateTrain(ctx context.Context, train domain.Train) error {
	const stmt = `
INSERT INTO trains (id, name, departure_station, arrival_station, departure_time, arrival_time, seats_available)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, stmt,
		train.ID,
		train.Name,
		train.DepartureStation,
		train.ArrivalStation,
		train.DepartureTime,
		train.ArrivalTime,
		train.SeatsAvailable,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create train: %w", err)
	}
	return nil
}

func (r *TrainRepository) SearchTrains(ctx context.Context, departureStation, arrivalStation string) ([]domain.Train, error) {
	const query = `
SELECT id, name, departure_station, arrival_station, departure_time, arrival_time, seats_available
FROM trains
WHERE departure_station = $1 AND arrival_station = $2
ORDER BY departure_time ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, departureStation, arrivalStation)
	if err != nil {
		return nil, fmt.Errorf("search trains: %w", err)
	}
	defer rows.Close()

	var trains []domain.Train
	for rows.Next() {
		var t domain.Train
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.DepartureStation,
			&t.ArrivalStation,
			&t.DepartureTime,
			&t.ArrivalTime,
			&t.SeatsAvailable,
		); err != nil {
			return nil, fmt.Errorf("scan train: %w", err)
		}
		trains = append(trains, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate trains: %w", rows.Err())
	}
	return trains, nil
}

func (r *TrainRepository) GetTrain(ctx context.Context, trainID string) (domain.Train, error) {
	const query = `
SELECT id, name, departure_station, arrival_station, departure_time, arrival_time, seats_available
FROM trains
WHERE id = $1`

	var t domain.Train
	err := r.pool.QueryRow(ctx, query, trainID).Scan(
		&t.ID,
		&t.Name,
		&t.DepartureStation,
		&t.ArrivalStation,
		&t.DepartureTime,
		&t.ArrivalTime,
		&t.SeatsAvailable,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Train{}, domain.ErrTrainNotFound
		}
		if err == pgx.ErrNoRows {
			return domain.Train{}, domain.ErrTrainNotFound
		}
		return domain.Train{}, fmt.Errorf("get train: %w", err)
	}
	return t, nil
}
