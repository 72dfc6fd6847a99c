package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// decodeAndValidate parses the JSON request body into req and validates it.
// On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgValidationFailed,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// decodeOptionalAndValidate is decodeAndValidate for endpoints whose body is
// optional: a missing body leaves req at its zero value instead of failing.
func decodeOptionalAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgValidationFailed,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// characterIDParam extracts the characterID path parameter. On failure it
// writes the error response and returns false.
func characterIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, URLParamCharacterID), 10, 64)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
		return 0, false
	}
	return id, true
}

// itemCodeParam extracts the itemCode path parameter
func itemCodeParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	code, err := strconv.Atoi(chi.URLParam(r, URLParamItemCode))
	if err != nil || code < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemCode)
		return 0, false
	}
	return code, true
}
