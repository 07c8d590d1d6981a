package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category application.ErrorCategory
		status   int
		code     string
	}{
		{
			name:     "missing field",
			err:      domain.NewMissingRequiredFieldError("shop_id"),
			category: application.CategoryValidation,
			status:   http.StatusBadRequest,
			code:     domain.ErrCodeMissingRequiredField,
		},
		{
			name:     "wrapped invalid currency",
			err:      fmt.Errorf("build register: %w", domain.NewInvalidCurrencyError("GBP")),
			category: application.CategoryValidation,
			status:   http.StatusBadRequest,
			code:     domain.ErrCodeInvalidCurrency,
		},
		{
			name:     "missing wsdl",
			err:      domain.NewWsdlNotFoundError("/nope.wsdl"),
			category: application.CategoryConfiguration,
			status:   http.StatusInternalServerError,
			code:     domain.ErrCodeWsdlNotFound,
		},
		{
			name:     "network failure",
			err:      &application.TransportError{Operation: "cancel", Err: errors.New("connection refused")},
			category: application.CategoryTransport,
			status:   http.StatusBadGateway,
			code:     "TRANSPORT_ERROR",
		},
		{
			name:     "processor http error",
			err:      &application.TransportError{Operation: "cancel", StatusCode: http.StatusServiceUnavailable, Err: errors.New("processor returned status 503")},
			category: application.CategoryTransport,
			status:   http.StatusBadGateway,
			code:     "TRANSPORT_ERROR",
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("call: %w", context.DeadlineExceeded),
			category: application.CategoryTimeout,
			status:   http.StatusGatewayTimeout,
			code:     "TIMEOUT",
		},
		{
			name:     "canceled inside a transport error",
			err:      &application.TransportError{Operation: "cancel", Err: fmt.Errorf("error making request: %w", context.Canceled)},
			category: application.CategoryTimeout,
			status:   http.StatusGatewayTimeout,
			code:     "TIMEOUT",
		},
		{
			name:     "recovered panic",
			err:      application.NewPanicError(context.Canceled, nil),
			category: application.CategoryInternal,
			status:   http.StatusInternalServerError,
			code:     "INTERNAL_ERROR",
		},
		{
			name:     "anything else",
			err:      errors.New("unexpected"),
			category: application.CategoryInternal,
			status:   http.StatusInternalServerError,
			code:     "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, application.CategorizeError(tt.err))
			assert.Equal(t, tt.status, application.ToHTTPStatus(tt.err))
			assert.Equal(t, tt.code, application.ToErrorCode(tt.err))
		})
	}

	assert.Equal(t, application.ErrorCategory(""), application.CategorizeError(nil))
	assert.Equal(t, http.StatusOK, application.ToHTTPStatus(nil))
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &application.TransportError{Operation: "refund", Endpoint: "https://x", StatusCode: 0, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "refund")
	assert.Contains(t, err.Error(), "connection reset")

	wrapped := fmt.Errorf("send: %w", err)
	got, ok := application.IsTransportError(wrapped)
	assert.True(t, ok)
	assert.Same(t, err, got)
}

func TestRawResult(t *testing.T) {
	fault := application.FaultResult("Order not found")
	assert.True(t, fault.IsFault())
	assert.Equal(t, "Order not found", fault.Fault())
	assert.Nil(t, fault.ReturnValue())

	success := application.SuccessResult(nil)
	assert.False(t, success.IsFault())
	assert.Equal(t, map[string]any{}, success.ReturnValue())
}
