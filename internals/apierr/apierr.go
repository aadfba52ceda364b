// internals/apierr/apierr.go
package apierr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Kind is the closed discriminant for every error that crosses a handler
// boundary. It is decided once where the error is produced, never re-sniffed
// at catch sites.
type Kind string

const (
	KindStore      Kind = "store"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "notFound"
	KindUnexpected Kind = "unexpected"
)

// Error is the single error shape the central formatter renders.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation: malformed IDs, missing required fields, bad payloads.
func Validation(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  fiber.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// ValidationWithDetails carries per-field errors from validator.v10.
func ValidationWithDetails(message string, details any) *Error {
	e := Validation(message)
	e.Details = details
	return e
}

// NotFound: a missing entity or missing parent/target, with a machine code
// such as PROGRAM_NOT_FOUND.
func NotFound(code, message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Status:  fiber.StatusNotFound,
		Code:    code,
		Message: message,
	}
}

// BadTarget is the reassignment flavor of notFound: a missing reassignment
// target answers 400 with the entity code, not 404.
func BadTarget(code, message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Status:  fiber.StatusBadRequest,
		Code:    code,
		Message: message,
	}
}

// Store wraps an error coming back from the data store, remapping the small
// known set of Postgres codes to friendlier messages and passing the native
// code through otherwise.
func Store(err error) *Error {
	e := &Error{
		Kind:    KindStore,
		Status:  fiber.StatusInternalServerError,
		Code:    "STORE_ERROR",
		Message: "data store operation failed",
		Err:     err,
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		e.Code = string(pqErr.Code)
		switch pqErr.Code {
		case "23505":
			e.Status = fiber.StatusConflict
			e.Message = "a record with the same unique value already exists"
		case "23503":
			e.Status = fiber.StatusConflict
			e.Message = "operation violates a relationship with existing records"
		default:
			e.Message = pqErr.Message
		}
	}
	return e
}

// StoreNotFound maps gorm.ErrRecordNotFound into the notFound variant so a
// point lookup miss never surfaces as a 500.
func StoreNotFound(err error, code, message string) *Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(code, message)
	}
	return Store(err)
}

// Unexpected: anything that escaped classification at the boundary.
func Unexpected(err error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Status:  fiber.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
		Err:     err,
	}
}

// IsUndefinedTable reports the "schema mismatch" store code that the
// hierarchy view deliberately hides behind an empty result. The string
// fallback covers non-Postgres stores used in tests.
func IsUndefinedTable(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such table") || strings.Contains(msg, "does not exist")
}
