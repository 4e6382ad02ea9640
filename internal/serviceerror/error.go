package serviceerror

import (
	"errors"
	"fmt"
)

// Type partitions service errors into caller faults and server faults
type Type string

const (
	ClientErrorType Type = "client_error"
	ServerErrorType Type = "server_error"
)

// ServiceError is the structured error value returned across the service
// boundary. Handlers map Code to an HTTP status; the core never surfaces raw
// database errors.
type ServiceError struct {
	Code        string `json:"code"`
	Type        Type   `json:"type"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Description)
	}
	return e.Message
}

// Is matches service errors by code so callers can use errors.Is against the
// base values below.
func (e *ServiceError) Is(target error) bool {
	var t *ServiceError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Base error values
var (
	ErrNotFound = &ServiceError{
		Type:    ClientErrorType,
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	ErrInvalidArgument = &ServiceError{
		Type:    ClientErrorType,
		Code:    "VALIDATION_ERROR",
		Message: "invalid argument",
	}

	ErrConflict = &ServiceError{
		Type:    ClientErrorType,
		Code:    "CONFLICT",
		Message: "request conflicts with current state",
	}

	ErrUnauthenticated = &ServiceError{
		Type:    ClientErrorType,
		Code:    "UNAUTHORIZED",
		Message: "authentication failed",
	}

	ErrAccountDeactivated = &ServiceError{
		Type:    ClientErrorType,
		Code:    "ACCOUNT_DEACTIVATED",
		Message: "account has been deactivated",
	}

	ErrInternal = &ServiceError{
		Type:    ServerErrorType,
		Code:    "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	}

	ErrDatabase = &ServiceError{
		Type:    ServerErrorType,
		Code:    "DATABASE_ERROR",
		Message: "a database error occurred",
	}
)

// New builds a service error from a base value with a specific description
func New(base *ServiceError, description string) *ServiceError {
	return &ServiceError{
		Type:        base.Type,
		Code:        base.Code,
		Message:     base.Message,
		Description: description,
	}
}

// Newf builds a service error from a base value with a formatted description
func Newf(base *ServiceError, format string, args ...interface{}) *ServiceError {
	return New(base, fmt.Sprintf(format, args...))
}
