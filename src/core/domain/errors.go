package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
)

// Kind discriminates the category of a failure independent of its message text.
type Kind string

const (
	KindTypeMismatch   Kind = "type-mismatch"
	KindOutOfRange     Kind = "out-of-range"
	KindNotFound       Kind = "not-found"
	KindIOFailure      Kind = "io-failure"
	KindValidation     Kind = "validation-failure"
	KindDivisionByZero Kind = "division-by-zero"
	KindUnderflow      Kind = "underflow"
	KindConflict       Kind = "conflict"
	KindNotImplemented Kind = "not-implemented"
	KindUnclassified   Kind = "unclassified"
)

// Base errors, one per kind. DomainError wraps one of these so callers can
// use errors.Is without looking at messages.
var (
	// ErrTypeMismatch is returned when a value has the wrong type (e.g. a non-integer age).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange is returned when a value is outside its allowed interval.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrIO is returned when reading or writing a resource fails.
	ErrIO = errors.New("i/o failure")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnderflow is returned when an operation would take a balance below zero.
	ErrUnderflow = errors.New("balance underflow")

	// ErrConflict is returned when there's a conflict with the current state.
	ErrConflict = errors.New("conflict")

	// ErrNotImplemented is returned by base capabilities a variant did not override.
	ErrNotImplemented = errors.New("not implemented")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// Kind reports the failure kind of the wrapped base error.
func (e *DomainError) Kind() Kind {
	return KindOf(e.Base)
}

// NewTypeMismatchError creates a type mismatch error for a specific field.
func NewTypeMismatchError(field, message string) *DomainError {
	return &DomainError{Base: ErrTypeMismatch, Message: message, Field: field}
}

// NewOutOfRangeError creates an out-of-range error for a specific field.
func NewOutOfRangeError(field, message string) *DomainError {
	return &DomainError{Base: ErrOutOfRange, Message: message, Field: field}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewIOError creates an i/o error describing the failed operation.
func NewIOError(message string) *DomainError {
	return &DomainError{Base: ErrIO, Message: message}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewDivisionByZeroError creates a division by zero error.
func NewDivisionByZeroError(message string) *DomainError {
	return &DomainError{Base: ErrDivisionByZero, Message: message, Field: "denominator"}
}

// NewUnderflowError creates a balance underflow error.
func NewUnderflowError(message string) *DomainError {
	return &DomainError{Base: ErrUnderflow, Message: message, Field: "amount"}
}

// NewConflictError creates a conflict error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Base:    ErrConflict,
		Message: message,
	}
}

// NewNotImplementedError creates a not implemented error naming the missing capability.
func NewNotImplementedError(capability string) *DomainError {
	return &DomainError{Base: ErrNotImplemented, Message: capability + " must be implemented by the variant"}
}

// classifier maps a predicate to a kind. The chain is checked in order.
type classifier struct {
	kind  Kind
	match func(error) bool
}

func is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

// classifiers is ordered from most to least specific. fs.ErrNotExist must be
// checked before the generic *fs.PathError so a missing file stays not-found.
// KindUnclassified is never listed: it is what KindOf returns when nothing matched.
var classifiers = []classifier{
	{KindTypeMismatch, is(ErrTypeMismatch)},
	{KindTypeMismatch, is(strconv.ErrSyntax)},
	{KindOutOfRange, is(ErrOutOfRange)},
	{KindOutOfRange, is(strconv.ErrRange)},
	{KindNotFound, is(ErrNotFound)},
	{KindNotFound, is(fs.ErrNotExist)},
	{KindValidation, is(ErrInvalidInput)},
	{KindDivisionByZero, is(ErrDivisionByZero)},
	{KindUnderflow, is(ErrUnderflow)},
	{KindConflict, is(ErrConflict)},
	{KindNotImplemented, is(ErrNotImplemented)},
	{KindIOFailure, is(ErrIO)},
	{KindIOFailure, func(err error) bool {
		var pathErr *fs.PathError
		return errors.As(err, &pathErr)
	}},
}

// KindOf classifies err. A DomainError anywhere in the chain decides the
// kind, so an explicit NewIOError wrapping fs.ErrNotExist stays io-failure.
// Otherwise the classifier chain runs over err. It returns "" for a nil
// error and KindUnclassified when no specific kind matches.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if k := classify(domainErr.Base); k != KindUnclassified {
			return k
		}
	}
	return classify(err)
}

func classify(err error) Kind {
	for _, c := range classifiers {
		if c.match(err) {
			return c.kind
		}
	}
	return KindUnclassified
}

// FieldOf returns the offending field of a DomainError anywhere in err's chain.
func FieldOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Field
	}
	return ""
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUnclassified reports whether err matched none of the specific kinds.
func IsUnclassified(err error) bool {
	return KindOf(err) == KindUnclassified
}
