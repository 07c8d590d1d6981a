package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a local configuration or input error raised before
// any call reaches the processor.
type DomainError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches the ErrConfiguration and ErrValidation sentinels by error kind.
func (e *DomainError) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.isConfiguration()
	case ErrValidation:
		return e.isValidation()
	}
	return false
}

func (e *DomainError) isConfiguration() bool {
	switch e.Code {
	case ErrCodeWsdlNotFound, ErrCodeEndpointNotConfigured, ErrCodeInvalidConfiguration:
		return true
	}
	return false
}

func (e *DomainError) isValidation() bool {
	switch e.Code {
	case ErrCodeMissingRequiredField, ErrCodeInvalidCurrency, ErrCodeInvalidLanguage,
		ErrCodeInvalidRegisterMode, ErrCodeInvalidItem, ErrCodeInvalidCustomer, ErrCodeInvalidAmount,
		ErrCodeInvalidRequest:
		return true
	}
	return false
}

var (
	// ErrConfiguration matches every error caused by invalid local configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation matches every error caused by invalid caller input.
	ErrValidation = errors.New("validation error")
)

// Configuration errors
const (
	ErrCodeWsdlNotFound          = "WSDL_NOT_FOUND"
	ErrCodeEndpointNotConfigured = "ENDPOINT_NOT_CONFIGURED"
	ErrCodeInvalidConfiguration  = "INVALID_CONFIGURATION"
)

// Validation errors
const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidCurrency      = "INVALID_CURRENCY"
	ErrCodeInvalidLanguage      = "INVALID_LANGUAGE"
	ErrCodeInvalidRegisterMode  = "INVALID_REGISTER_MODE"
	ErrCodeInvalidItem          = "INVALID_ITEM"
	ErrCodeInvalidCustomer      = "INVALID_CUSTOMER"
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
)

func NewWsdlNotFoundError(path string) *DomainError {
	return &DomainError{
		Code:    ErrCodeWsdlNotFound,
		Message: fmt.Sprintf("WSDL file does not exist at %q", path),
		Field:   "wsdl",
	}
}

func NewEndpointNotConfiguredError() *DomainError {
	return &DomainError{
		Code:    ErrCodeEndpointNotConfigured,
		Message: "endpoint is not configured for the selected mode",
		Field:   "endpoint",
	}
}

func NewInvalidConfigurationError(field string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidConfiguration,
		Message: fmt.Sprintf("invalid configuration for %s", field),
		Field:   field,
		Err:     err,
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("the %s parameter is required", field),
		Field:   field,
	}
}

func NewInvalidCurrencyError(value string) *DomainError {
	return &DomainError{
		Code: ErrCodeInvalidCurrency,
		Message: fmt.Sprintf("currency must be one of [%s], but %q given",
			strings.Join(currencyNames(), ","), value),
		Field: "currency",
	}
}

func NewInvalidLanguageError(value string) *DomainError {
	return &DomainError{
		Code: ErrCodeInvalidLanguage,
		Message: fmt.Sprintf("language must be one of %s, but %q given",
			strings.Join(languageNames(), ", "), value),
		Field: "language",
	}
}

func NewInvalidRegisterModeError(value string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidRegisterMode,
		Message: fmt.Sprintf("no %q register mode exists", value),
		Field:   "register_mode",
	}
}

func NewInvalidItemError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidItem,
		Message: "item must be a field mapping or a valid item descriptor",
		Field:   "items",
		Err:     err,
	}
}

func NewInvalidCustomerError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCustomer,
		Message: "customer must be a field mapping or a valid customer descriptor",
		Field:   "customer",
		Err:     err,
	}
}

func NewInvalidAmountError(value string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %q", value),
		Field:   "amount",
		Err:     err,
	}
}

// NewInvalidRequestError is raised by the HTTP surface for bodies or
// parameters that cannot be turned into a request.
func NewInvalidRequestError(message string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidRequest,
		Message: message,
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsDomainError unwraps err into a DomainError.
func IsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
