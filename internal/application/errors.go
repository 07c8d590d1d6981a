package application

import (
	"errors"
	"fmt"
)

// TransportError is returned when a channel call did not complete: network
// failures, non-2xx replies and bodies that are not a SOAP envelope. SOAP
// faults are completed calls and come back as FaultResult instead.
type TransportError struct {
	Operation  string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error calling %s at %s: %v (status: %d)", e.Operation, e.Endpoint, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("transport error calling %s at %s (status: %d)", e.Operation, e.Endpoint, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panicking handler. Its text is
// never shown to API callers.
type PanicError struct {
	Value any
	Stack []byte
}

func NewPanicError(value any, stack []byte) *PanicError {
	return &PanicError{Value: value, Stack: stack}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func IsPanicError(err error) (*PanicError, bool) {
	var panicErr *PanicError
	ok := errors.As(err, &panicErr)
	return panicErr, ok
}

func IsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	ok := errors.As(err, &transportErr)
	return transportErr, ok
}
