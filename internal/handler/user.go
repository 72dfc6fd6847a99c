package handler

import (
	"net/http"

	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/user"
)

// SignUpRequest is the sign-up payload. The email doubles as the login ID;
// its character rules are enforced by the service.
type SignUpRequest struct {
	Email         string `json:"email" validate:"required,min=5,max=20,loginid"`
	Password      string `json:"password" validate:"required,min=6"`
	PasswordCheck string `json:"password_check" validate:"required"`
	Name          string `json:"name" validate:"required,max=30"`
}

// SignInRequest is the sign-in payload
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUpResponse returns the new account's public fields
type SignUpResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// SignInResponse carries the signed session token
type SignInResponse struct {
	Token string `json:"token"`
}

// HandleSignUp handles POST /api/sign-up
func HandleSignUp(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		created, err := svc.SignUp(r.Context(), req.Email, req.Password, req.PasswordCheck, req.Name)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgSignUpFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, SignUpResponse{
			Message: MsgSignUpComplete,
			UserID:  created.ID,
		})
	}
}

// HandleSignIn handles POST /api/sign-in
func HandleSignIn(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		token, err := svc.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgSignInFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SignInResponse{Token: token})
	}
}
