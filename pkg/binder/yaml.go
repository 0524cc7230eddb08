package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"
)

// YAML decodes an application/yaml (or application/x-yaml, text/yaml) request
// body into v and validates it. Unknown fields are rejected.
func YAML(r *http.Request, v any) error {
	if err := mediaType(r, "application/yaml", "application/x-yaml", "text/yaml"); err != nil {
		return err
	}

	body, err := readBody(r)
	if err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			return err
		}
		return fmt.Errorf("%w: failed to read request body: %v", ErrInvalidYAML, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(body))
	decoder.KnownFields(true)

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidYAML)
		}
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return validate(v)
}
