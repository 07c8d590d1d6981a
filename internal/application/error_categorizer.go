package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/egopay-gateway/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and HTTP mapping
type ErrorCategory string

const (
	CategoryConfiguration ErrorCategory = "CONFIGURATION"
	CategoryValidation    ErrorCategory = "VALIDATION"
	CategoryTransport     ErrorCategory = "TRANSPORT"
	CategoryTimeout       ErrorCategory = "TIMEOUT"
	CategoryInternal      ErrorCategory = "INTERNAL"
)

// CategorizeError determines the error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if _, ok := IsPanicError(err); ok {
		return CategoryInternal
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTimeout
	}

	// Local errors never reach the wire
	if errors.Is(err, domain.ErrConfiguration) {
		return CategoryConfiguration
	}
	if errors.Is(err, domain.ErrValidation) {
		return CategoryValidation
	}

	if _, ok := IsTransportError(err); ok {
		return CategoryTransport
	}

	return CategoryInternal
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch CategorizeError(err) {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryTransport:
		return http.StatusBadGateway
	case CategoryTimeout:
		return http.StatusGatewayTimeout
	}

	// Configuration problems are ours, not the caller's
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if _, ok := IsPanicError(err); ok {
		return "INTERNAL_ERROR"
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "TIMEOUT"
	}

	if domainErr, ok := domain.IsDomainError(err); ok {
		return domainErr.Code
	}

	if _, ok := IsTransportError(err); ok {
		return "TRANSPORT_ERROR"
	}

	return "INTERNAL_ERROR"
}
