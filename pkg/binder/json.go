package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON decodes an application/json request body into v and validates it.
// Unknown fields and trailing data are rejected.
//
// Example:
//
//	func createUser(w http.ResponseWriter, r *http.Request) {
//		var req CreateUserRequest
//		if err := binder.JSON(r, &req); err != nil {
//			binder.WriteError(w, err)
//			return
//		}
//		// req passed req.Validate()
//	}
func JSON(r *http.Request, v any) error {
	if err := mediaType(r, "application/json"); err != nil {
		return err
	}

	body, err := readBody(r)
	if err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			return err
		}
		return fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return validate(v)
}
