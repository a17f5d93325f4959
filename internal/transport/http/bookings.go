package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/HarshitTripathi3008/railway-reservation/internal/app"
	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

// BookingCreator is the minimal interface needed by the book-ticket endpoint.
type BookingCreator interface {
	CreateBooking(ctx context.Context, in app.CreateBookingInput) (domain.Booking, error)
}

// HandleBookTicket returns an HTTP handler for POST /book-ticket.
func HandleBookTicket(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookTicketRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		if req.TrainID == "" || req.PassengerName == "" || req.ContactInfo == "" || req.SeatsToBook == 0 {
			writeFailure(w, http.StatusBadRequest, codeMissingRequiredField, "All fields are required.")
			return
		}

		booking, err := svc.CreateBooking(r.Context(), app.CreateBookingInput{
			TrainID:       req.TrainID,
			PassengerName: req.PassengerName,
			ContactInfo:   req.ContactInfo,
			Seats:         req.SeatsToBook,
		})
		if err != nil {
			switch err {
			case domain.ErrInvalidSeatCount:
				writeFailure(w, http.StatusBadRequest, codeInvalidSeatCount, err.Error())
			case domain.ErrInsufficientSeats:
				writeFailure(w, http.StatusBadRequest, codeInsufficientSeats, "Not enough seats available.")
			case domain.ErrTrainNotFound:
				writeFailure(w, http.StatusNotFound, codeTrainNotFound, "Train not found.")
			case domain.ErrTrainIDRequired, domain.ErrPassengerNameRequired, domain.ErrContactInfoRequired:
				writeFailure(w, http.StatusBadRequest, codeMissingRequiredField, err.Error())
			default:
				writeFailure(w, http.StatusInternalServerError, codeInternalError, "Internal server error.")
			}
			return
		}

		writeJSON(w, http.StatusCreated, bookTicketResponse{
			Success:   true,
			Message:   "Booking successful.",
			BookingID: booking.ID,
		})
	}
}

type bookTicketRequest struct {
	TrainID       string `json:"train_id"`
	PassengerName string `json:"passenger_name"`
	ContactInfo   string `json:"contact_info"`
	SeatsToBook   int    `json:"seats_to_book"`
}

type bookTicketResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}
