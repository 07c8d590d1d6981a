package application

import "context"

// ChannelConfig is what a Dialer needs to reach one processor service.
type ChannelConfig struct {
	WSDL     string
	Endpoint string
	User     string
	Password string
}

// Dialer is the port for building RPC channels to the processor.
type Dialer interface {
	Dial(ctx context.Context, cfg ChannelConfig) (Channel, error)
}

// Channel is the port for one processor service. Call issues exactly one
// blocking request.
type Channel interface {
	Call(ctx context.Context, operation string, payload map[string]any) (RawResult, error)
}

// RawResult is either a plain-string fault or a structured return value.
type RawResult struct {
	fault       string
	returnValue map[string]any
	isFault     bool
}

// FaultResult wraps a plain-string reply, which the processor uses to decline
// an operation.
func FaultResult(message string) RawResult {
	return RawResult{fault: message, isFault: true}
}

// SuccessResult wraps the structured return value of an operation.
func SuccessResult(returnValue map[string]any) RawResult {
	if returnValue == nil {
		returnValue = map[string]any{}
	}
	return RawResult{returnValue: returnValue}
}

func (r RawResult) IsFault() bool {
	return r.isFault
}

func (r RawResult) Fault() string {
	return r.fault
}

func (r RawResult) ReturnValue() map[string]any {
	return r.returnValue
}
