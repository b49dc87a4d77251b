package shared

import "fmt"

// DomainError represents a business-level error with a stable code that the
// HTTP layer maps to a status. Wrap transport or database failures into one
// of the constructors below before returning them across a service boundary.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Error codes used across services.
const (
	CodeConfiguration = "CONFIGURATION_ERROR"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodePersistence   = "PERSISTENCE_ERROR"
)

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "resource not found")
	ErrUnauthorized = NewDomainError(CodeUnauthorized, "unauthorized")
)

// NewValidationError creates a validation error with a field-specific message.
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewConfigurationError signals a missing or invalid setting detected before
// any network call was made.
func NewConfigurationError(message string) *DomainError {
	return NewDomainError(CodeConfiguration, message)
}

// NewPersistenceError wraps a database failure.
func NewPersistenceError(op string, err error) *DomainError {
	return NewDomainError(CodePersistence, fmt.Sprintf("%s: %v", op, err))
}
