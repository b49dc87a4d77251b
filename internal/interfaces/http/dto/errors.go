package dto

import "net/http"

// Error code constants, format ERR_<CATEGORY>.
const (
	ErrCodeInternal      = "ERR_INTERNAL"
	ErrCodeBadRequest    = "ERR_BAD_REQUEST"
	ErrCodeValidation    = "ERR_VALIDATION"
	ErrCodeUnauthorized  = "ERR_UNAUTHORIZED"
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeConfiguration = "ERR_CONFIGURATION"
	ErrCodeUpstream      = "ERR_UPSTREAM"
	ErrCodePersistence   = "ERR_PERSISTENCE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:      http.StatusInternalServerError,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeValidation:    http.StatusBadRequest,
	ErrCodeUnauthorized:  http.StatusUnauthorized,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeConfiguration: http.StatusInternalServerError,
	ErrCodeUpstream:      http.StatusBadGateway,
	ErrCodePersistence:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to
// 500 for unknown codes.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping translates domain error codes to response codes.
var domainErrorCodeMapping = map[string]string{
	"CONFIGURATION_ERROR": ErrCodeConfiguration,
	"UPSTREAM_ERROR":      ErrCodeUpstream,
	"VALIDATION_ERROR":    ErrCodeValidation,
	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"NOT_FOUND":           ErrCodeNotFound,
	"PERSISTENCE_ERROR":   ErrCodePersistence,
}

// NormalizeErrorCode converts a domain error code to the response format.
// Codes already in the response format pass through unchanged.
func NormalizeErrorCode(code string) string {
	if mapped, ok := domainErrorCodeMapping[code]; ok {
		return mapped
	}
	return code
}
