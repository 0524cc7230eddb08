package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID accepts the canonical 36-character hyphenated form.
func UUID[S ~string]() Rule[S] {
	return newRule("uuid", "must be a valid UUID", ErrInvalidFormat, func(v S) bool {
		_, ok := parseUUID(string(v))
		return ok
	})
}

// NonNilUUID rejects uuid.Nil.
func NonNilUUID() Rule[uuid.UUID] {
	return newRule("uuid_not_nil", "UUID cannot be nil", ErrFieldRequired, func(v uuid.UUID) bool {
		return v != uuid.Nil
	})
}

// UUIDVersion accepts UUIDs of the given version.
func UUIDVersion(version int) Rule[uuid.UUID] {
	return newRule("uuid_version", fmt.Sprintf("must be a UUID version %d", version), ErrInvalidFormat, func(v uuid.UUID) bool {
		return v.Version() == uuid.Version(version)
	})
}

// parseUUID rejects anything but the canonical form before calling
// uuid.Parse, which also accepts braces and urn prefixes.
func parseUUID(value string) (uuid.UUID, bool) {
	if len(value) != 36 {
		return uuid.Nil, false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
