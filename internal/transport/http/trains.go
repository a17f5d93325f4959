package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/HarshitTripathi3008/railway-reservation/internal/app"
	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

// TrainSearcher is the minimal interface needed by the search endpoint.
type TrainSearcher interface {
	SearchTrains(ctx context.Context, departureStation, arrivalStation string) ([]domain.Train, error)
}

// TrainCreator is the minimal interface needed by the add-train endpoint.
type TrainCreator interface {
	AddTrain(ctx context.Context, in app.AddTrainInput) (domain.Train, error)
}

// HandleSearchTrains returns an HTTP handler for GET /search-trains.
func HandleSearchTrains(svc TrainSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		departure := r.URL.Query().Get("departure_station")
		arrival := r.URL.Query().Get("arrival_station")
		if departure == "" || arrival == "" {
			writeFailure(w, http.StatusBadRequest, codeMissingQueryParam, "Both departure and arrival stations are required.")
			return
		}

		trains, err := svc.SearchTrains(r.Context(), departure, arrival)
		if err != nil {
			writeFailure(w, http.StatusInternalServerError, codeInternalError, "Internal server error.")
			return
		}

		if len(trains) == 0 {
			writeJSON(w, http.StatusOK, searchTrainsResponse{
				Success: false,
				Message: "No trains found.",
			})
			return
		}

		resp := searchTrainsResponse{Success: true, Trains: make([]trainResponse, 0, len(trains))}
		for _, t := range trains {
			resp.Trains = append(resp.Trains, trainResponse{
				TrainID:          t.ID,
				TrainName:        t.Name,
				DepartureStation: t.DepartureStation,
				ArrivalStation:   t.ArrivalStation,
				DepartureTime:    t.DepartureTime,
				ArrivalTime:      t.ArrivalTime,
				SeatsAvailable:   t.SeatsAvailable,
				AvailableTickets: t.SeatsAvailable,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleAddTrain returns an HTTP handler for POST /add-train.
func HandleAddTrain(svc TrainCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addTrainRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		if req.TrainName == "" {
			writeFailure(w, http.StatusBadRequest, codeTrainNameRequired, domain.ErrTrainNameRequired.Error())
			return
		}
		if req.DepartureStation == "" || req.ArrivalStation == "" {
			writeFailure(w, http.StatusBadRequest, codeStationRequired, domain.ErrStationRequired.Error())
			return
		}
		departureTime, err := time.Parse(time.RFC3339, req.DepartureTime)
		if err != nil {
			writeFailure(w, http.StatusBadRequest, codeInvalidTime, "invalid departure_time format")
			return
		}
		arrivalTime, err := time.Parse(time.RFC3339, req.ArrivalTime)
		if err != nil {
			writeFailure(w, http.StatusBadRequest, codeInvalidTime, "invalid arrival_time format")
			return
		}

		train, err := svc.AddTrain(r.Context(), app.AddTrainInput{
			Name:             req.TrainName,
			DepartureStation: req.DepartureStation,
			ArrivalStation:   req.ArrivalStation,
			DepartureTime:    departureTime,
			ArrivalTime:      arrivalTime,
			SeatsAvailable:   req.SeatsAvailable,
		})
		if err != nil {
			switch err {
			case domain.ErrTrainNameRequired:
				writeFailure(w, http.StatusBadRequest, codeTrainNameRequired, err.Error())
			case domain.ErrStationRequired:
				writeFailure(w, http.StatusBadRequest, codeStationRequired, err.Error())
			case domain.ErrInvalidCapacity:
				writeFailure(w, http.StatusBadRequest, codeInvalidCapacity, err.Error())
			default:
				writeFailure(w, http.StatusInternalServerError, codeInternalError, "Internal server error.")
			}
			return
		}

		writeJSON(w, http.StatusCreated, addTrainResponse{
			Success: true,
			Message: "Train added successfully.",
			TrainID: train.ID,
		})
	}
}

type addTrainRequest struct {
	TrainName        string `json:"train_name"`
	DepartureStation string `json:"departure_station"`
	ArrivalStation   string `json:"arrival_station"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	SeatsAvailable   int    `json:"seats_available"`
}

type addTrainResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TrainID string `json:"train_id"`
}

type trainResponse struct {
	TrainID          string    `json:"train_id"`
	TrainName        string    `json:"train_name"`
	DepartureStation string    `json:"departure_station"`
	ArrivalStation   string    `json:"arrival_station"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	SeatsAvailable   int       `json:"seats_available"`
	AvailableTickets int       `json:"available_tickets"`
}

type searchTrainsResponse struct {
	Success bool            `json:"success"`
	Trains  []trainResponse `json:"trains,omitempty"`
	Message string          `json:"message,omitempty"`
}
