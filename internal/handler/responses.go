package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/itemsim/server/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field validation messages
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent; nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"

	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgNotInInventoryError    = "You don't have that item"
	ErrMsgNotEquippedError       = "That item is not equipped"

	ErrMsgForbiddenError    = "You don't own that character"
	ErrMsgUnauthorizedError = "Unauthorized"

	ErrMsgNameTakenError       = "That character name is already taken"
	ErrMsgEmailTakenError      = "That ID is already registered"
	ErrMsgItemNameTakenError   = "That item name is already taken"
	ErrMsgItemCodeTakenError   = "That item code is already taken"
	ErrMsgAlreadyEquippedError = "That item is already equipped"
	ErrMsgItemEquippedError    = "Cannot sell an equipped item"

	ErrMsgNotEnoughMoneyError     = "Not enough money"
	ErrMsgNotEnoughInventoryError = "Not enough items in inventory"
)

// mapServiceErrorToStatus maps domain errors to HTTP status codes and
// user-facing messages per the error taxonomy: validation 400, unauthorized
// 401, ownership 403, absent entities 404, conflicts 409, everything else is
// a server error.
func mapServiceErrorToStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientInventory):
		return http.StatusBadRequest, ErrMsgNotEnoughInventoryError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusNotFound, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrNotEquipped):
		return http.StatusNotFound, ErrMsgNotEquippedError
	case errors.Is(err, domain.ErrNameTaken):
		return http.StatusConflict, ErrMsgNameTakenError
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, ErrMsgEmailTakenError
	case errors.Is(err, domain.ErrItemNameTaken):
		return http.StatusConflict, ErrMsgItemNameTakenError
	case errors.Is(err, domain.ErrItemCodeTaken):
		return http.StatusConflict, ErrMsgItemCodeTakenError
	case errors.Is(err, domain.ErrAlreadyEquipped):
		return http.StatusConflict, ErrMsgAlreadyEquippedError
	case errors.Is(err, domain.ErrItemEquipped):
		return http.StatusConflict, ErrMsgItemEquippedError
	default:
		// Store/transport failures and anything unclassified. The caller may
		// safely retry; details stay in the logs.
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError maps err and writes the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToStatus(err)
	respondError(w, status, message)
}
