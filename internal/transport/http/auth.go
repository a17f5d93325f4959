package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/HarshitTripathi3008/railway-reservation/internal/app"
	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
)

// AccountManager is the minimal interface needed by the signup/login endpoints.
type AccountManager interface {
	Signup(ctx context.Context, in app.SignupInput) (domain.User, error)
	Login(ctx context.Context, in app.LoginInput) (domain.User, error)
}

// HandleSignup returns an HTTP handler for POST /signup.
func HandleSignup(svc AccountManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		_, err := svc.Signup(r.Context(), app.SignupInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch err {
			case domain.ErrInvalidName:
				writeFailure(w, http.StatusBadRequest, codeInvalidName, "Name must be between 2-50 characters.")
			case domain.ErrInvalidEmail:
				writeFailure(w, http.StatusBadRequest, codeInvalidEmail, "Invalid email address.")
			case domain.ErrWeakPassword:
				writeFailure(w, http.StatusBadRequest, codeWeakPassword, err.Error())
			case domain.ErrUserExists:
				writeFailure(w, http.StatusBadRequest, codeUserExists, "User already exists.")
			default:
				writeFailure(w, http.StatusInternalServerError, codeInternalError, "Internal server error.")
			}
			return
		}

		writeJSON(w, http.StatusCreated, statusResponse{
			Success: true,
			Message: "User created successfully.",
		})
	}
}

// HandleLogin returns an HTTP handler for POST /login.
func HandleLogin(svc AccountManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			writeFailure(w, http.StatusBadRequest, codeMissingRequiredField, "Email and password are required.")
			return
		}

		_, err := svc.Login(r.Context(), app.LoginInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch err {
			case domain.ErrInvalidCredentials:
				writeFailure(w, http.StatusUnauthorized, codeInvalidCredentials, "Invalid credentials.")
			default:
				writeFailure(w, http.StatusInternalServerError, codeInternalError, "Internal server error.")
			}
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "Login successful.",
		})
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
