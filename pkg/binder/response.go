package binder

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/validex"
)

type errorResponse struct {
	Error string             `json:"error"`
	Field *validex.FieldError `json:"details,omitempty"`
}

// WriteError writes a JSON error body for an error returned by JSON or YAML.
// Validation failures get 422 with the failing field, unsupported or missing
// content types get 415, anything else gets 400.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	resp := errorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, ErrValidation):
		status = http.StatusUnprocessableEntity
		resp.Error = ErrValidation.Error()
		if fe, ok := validex.AsFieldError(err); ok {
			resp.Field = fe
		}
	case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, ErrMissingContentType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		status = http.StatusRequestEntityTooLarge
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
