package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeNotFound             = "not_found"
	codeMethodNotAllowed     = "method_not_allowed"
	codeInvalidRequestBody   = "invalid_request_body"
	codeMissingRequiredField = "missing_required_field"
	codeMissingQueryParam    = "missing_query_param"
	codeInvalidTime          = "invalid_time"
	codeInvalidSeatCount     = "invalid_seat_count"
	codeInvalidCapacity      = "invalid_capacity"
	codeTrainNameRequired    = "train_name_required"
	codeStationRequired      = "station_required"
	codeTrainNotFound        = "train_not_found"
	codeInsufficientSeats    = "insufficient_seats"
	codeInvalidName          = "invalid_name"
	codeInvalidEmail         = "invalid_email"
	codeWeakPassword         = "weak_password"
	codeUserExists           = "user_exists"
	codeInvalidCredentials   = "invalid_credentials"
	codeForbidden            = "forbidden"
	codeInternalError        = "internal_error"
)

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeFailure(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(failureResponse{
		Success: false,
		Message: msg,
		Code:    code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"success":false,"message":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
