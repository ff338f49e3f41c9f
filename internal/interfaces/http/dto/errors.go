package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Resource error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeAlreadyExists       = "ALREADY_EXISTS"
	ErrCodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
)

// Identifier error codes
const (
	ErrCodeDuplicateIdentifier  = "DUPLICATE_IDENTIFIER"
	ErrCodeMissingConfiguration = "MISSING_CONFIGURATION"
	ErrCodeUnsupportedFormat    = "UNSUPPORTED_FORMAT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Codes
// not listed fall through to the prefix rules in GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeNotFound:            http.StatusNotFound,
	"ADDRESS_NOT_FOUND":        http.StatusNotFound,
	"VARIANT_NOT_FOUND":        http.StatusNotFound,
	"ITEM_NOT_FOUND":           http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	"DUPLICATE_VARIANT":        http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	"INVALID_STATE":             http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":        http.StatusUnprocessableEntity,
	"NO_ITEMS":                  http.StatusUnprocessableEntity,
	"NO_SIZES":                  http.StatusUnprocessableEntity,
	"NO_SIZE_CATEGORY":          http.StatusUnprocessableEntity,
	"NOT_SUBMITTED":             http.StatusUnprocessableEntity,
	ErrCodeDuplicateIdentifier:  http.StatusUnprocessableEntity,
	ErrCodeMissingConfiguration: http.StatusUnprocessableEntity,

	ErrCodeUnsupportedFormat: http.StatusBadRequest,

	// ERP connector failures -> 502 Bad Gateway, except a disabled
	// connector which is a configuration state
	"ERP_SUBMIT_FAILED":     http.StatusBadGateway,
	"ERP_STATUS_FAILED":     http.StatusBadGateway,
	"ERP_CONNECTION_FAILED": http.StatusBadGateway,
	"ERP_DISABLED":          http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Validation-style codes (INVALID_*) map to 400; anything unknown
// is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
