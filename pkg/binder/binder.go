package binder

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/validex"
)

// DefaultMaxBodySize is the maximum accepted request body (1MB).
const DefaultMaxBodySize = 1 << 20

// mediaType returns the request media type without parameters, checked
// against the accepted ones.
func mediaType(r *http.Request, accepted ...string) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected %s", ErrMissingContentType, accepted[0])
	}

	mt := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mt = contentType[:idx]
	}
	mt = strings.ToLower(strings.TrimSpace(mt))

	if !slices.Contains(accepted, mt) {
		return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, accepted[0])
	}
	return nil
}

// readBody reads at most DefaultMaxBodySize bytes of the request body.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > DefaultMaxBodySize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxBodySize)
	}
	return body, nil
}

// validate runs v.Validate when v implements validex.Validatable.
func validate(v any) error {
	val, ok := v.(validex.Validatable)
	if !ok {
		return nil
	}
	if err := val.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// IsValidationError reports whether err came from the decoded value's
// Validate method rather than from decoding.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
