package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDomainError_Kinds(t *testing.T) {
	configErrors := []error{
		domain.NewWsdlNotFoundError("/missing.wsdl"),
		domain.NewEndpointNotConfiguredError(),
		domain.NewInvalidConfigurationError("soap.timeout", errors.New("must be positive")),
	}
	for _, err := range configErrors {
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.NotErrorIs(t, err, domain.ErrValidation)
	}

	validationErrors := []error{
		domain.NewMissingRequiredFieldError("shop_id"),
		domain.NewInvalidCurrencyError("GBP"),
		domain.NewInvalidLanguageError("fr"),
		domain.NewInvalidRegisterModeError("turbo"),
		domain.NewInvalidItemError(nil),
		domain.NewInvalidCustomerError(nil),
		domain.NewInvalidAmountError("x", nil),
		domain.NewInvalidRequestError("malformed body", nil),
	}
	for _, err := range validationErrors {
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NotErrorIs(t, err, domain.ErrConfiguration)
	}
}

func TestDomainError_Wrapping(t *testing.T) {
	cause := errors.New("bad input")
	err := fmt.Errorf("build: %w", domain.NewInvalidItemError(cause))

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidItem))

	domainErr, ok := domain.IsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, "items", domainErr.Field)
	assert.Contains(t, err.Error(), "bad input")
}

func TestMissingRequiredFieldError_Message(t *testing.T) {
	err := domain.NewMissingRequiredFieldError("payment_id")
	assert.Equal(t, "the payment_id parameter is required", err.Error())
	assert.Equal(t, "payment_id", err.Field)
}
