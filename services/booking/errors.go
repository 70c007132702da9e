package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError aggregates every field violation found in a request.
type ValidationError struct {
	Violations []string
}

func (e ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// InvalidIDError reports a reference id that is not numeric.
type InvalidIDError struct {
	Entity string
	Value  string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid %s id format: %q", e.Entity, e.Value)
}

// ReferenceError reports a reference id that resolved to nothing.
type ReferenceError struct {
	Entity string
	ID     string
	Err    error
}

func (e ReferenceError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func (e ReferenceError) Unwrap() error { return e.Err }

// ConflictError reports a duplicate business booking id on create.
type ConflictError struct {
	BookingID string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("booking already exists with id: %s", e.BookingID)
}

// NotFoundError reports a lookup by booking id that found nothing.
type NotFoundError struct {
	BookingID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("booking not found: %s", e.BookingID)
}

// InvalidStatusError reports a status string outside the recognized set.
type InvalidStatusError struct {
	Value string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid booking status: %q", e.Value)
}

// DeliveryError wraps a notification failure after the status transition
// has already been committed. The booking remains mutated.
type DeliveryError struct {
	BookingID string
	Err       error
}

func (e DeliveryError) Error() string {
	return fmt.Sprintf("booking %s submitted but notification failed: %v", e.BookingID, e.Err)
}

func (e DeliveryError) Unwrap() error { return e.Err }

// InternalError hides unexpected persistence failures from the caller;
// the detail is logged before it is surfaced.
type InternalError struct {
	Err error
}

func (e InternalError) Error() string {
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v ValidationError
	var id InvalidIDError
	var ref ReferenceError
	var st InvalidStatusError
	return errors.As(err, &v) || errors.As(err, &id) || errors.As(err, &ref) || errors.As(err, &st)
}

func IsConflict(err error) bool {
	var c ConflictError
	return errors.As(err, &c)
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsDelivery(err error) bool {
	var d DeliveryError
	return errors.As(err, &d)
}
