// internals/helpers/validation.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"elevencentral_backend/internals/apierr"
)

// ValidationError converts validator.v10 output to the tagged validation
// variant with a per-field details map.
func ValidationError(err error) *apierr.Error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apierr.Validation("invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return apierr.ValidationWithDetails("validation failed", fields)
}

// ParseUUIDParam parses a :param path segment into a UUID.
func ParseUUIDParam(raw, label string) (uuid.UUID, *apierr.Error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apierr.Validation("invalid " + label)
	}
	return id, nil
}

// ParseUUIDList parses a bulk ID payload, rejecting empties and malformed
// entries with the index of the first offender.
func ParseUUIDList(raw []string, label string) ([]uuid.UUID, *apierr.Error) {
	if len(raw) == 0 {
		return nil, apierr.Validation(label + " must not be empty")
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, apierr.ValidationWithDetails("invalid "+label, map[string]any{"index": i, "value": s})
		}
		ids = append(ids, id)
	}
	return ids, nil
}
