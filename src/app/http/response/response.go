// Package response defines consistent HTTP response structures.
// All API responses should use these types for consistency.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lessonbox/src/core/domain"
)

// Success represents a successful response with data.
type Success struct {
	Data any `json:"data"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Kind is the domain failure kind (e.g., "out-of-range"); empty for transport errors
	Kind domain.Kind `json:"kind,omitempty"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Data: data})
}

// BadRequest sends a 400 response for malformed requests.
func BadRequest(c *gin.Context, message string, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "BAD_REQUEST",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// ValidationError sends a 400 response for validation failures.
func ValidationError(c *gin.Context, field, message, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "VALIDATION_ERROR",
			Kind:      domain.KindValidation,
			Message:   message,
			Field:     field,
			RequestID: requestID,
		},
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error: ErrorDetail{
			Code:      "NOT_FOUND",
			Kind:      domain.KindNotFound,
			Message:   message,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response without exposing the cause.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Kind:      domain.KindUnclassified,
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		},
	})
}

type mapping struct {
	status int
	code   string
}

// kindMappings covers every specific kind. Unclassified falls through to
// InternalError in FromDomainError.
var kindMappings = map[domain.Kind]mapping{
	domain.KindValidation:     {http.StatusBadRequest, "VALIDATION_ERROR"},
	domain.KindTypeMismatch:   {http.StatusBadRequest, "TYPE_MISMATCH"},
	domain.KindOutOfRange:     {http.StatusUnprocessableEntity, "OUT_OF_RANGE"},
	domain.KindDivisionByZero: {http.StatusUnprocessableEntity, "DIVISION_BY_ZERO"},
	domain.KindUnderflow:      {http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS"},
	domain.KindNotFound:       {http.StatusNotFound, "NOT_FOUND"},
	domain.KindConflict:       {http.StatusConflict, "CONFLICT"},
	domain.KindNotImplemented: {http.StatusNotImplemented, "NOT_IMPLEMENTED"},
	domain.KindIOFailure:      {http.StatusInternalServerError, "IO_FAILURE"},
}

// StatusFor returns the HTTP status FromDomainError would send for err.
func StatusFor(err error) int {
	if m, ok := kindMappings[domain.KindOf(err)]; ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// Detail builds the error body for err. Unclassified errors get a generic message.
func Detail(err error, requestID string) ErrorDetail {
	kind := domain.KindOf(err)
	m, ok := kindMappings[kind]
	if !ok {
		return ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Kind:      domain.KindUnclassified,
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		}
	}
	return ErrorDetail{
		Code:      m.code,
		Kind:      kind,
		Message:   err.Error(),
		Field:     domain.FieldOf(err),
		RequestID: requestID,
	}
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// This centralizes error handling and ensures consistent error responses.
func FromDomainError(c *gin.Context, err error, requestID string) {
	_ = c.Error(err)
	c.JSON(StatusFor(err), Error{Error: Detail(err, requestID)})
}
