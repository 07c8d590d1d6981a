package message

import "github.com/DanielPopoola/egopay-gateway/internal/application"

// Response is the normalized result of one processor call. A plain-string
// reply is a business fault; a structured reply is a success.
type Response struct {
	result application.RawResult
}

func newResponse(result application.RawResult) Response {
	return Response{result: result}
}

func (r *Response) IsSuccessful() bool {
	return !r.result.IsFault()
}

// Data returns the structured reply, or the fault string as received.
func (r *Response) Data() any {
	if r.result.IsFault() {
		return r.result.Fault()
	}
	return r.result.ReturnValue()
}

func (r *Response) Fault() string {
	return r.result.Fault()
}

// Fields returns the structured reply, nil on a fault.
func (r *Response) Fields() map[string]any {
	return r.result.ReturnValue()
}

func (r *Response) IsRedirect() bool {
	return false
}

// Status is the processor status of the order or operation, when reported.
func (r *Response) Status() string {
	return stringValue(r.Fields()["status"])
}

// Order is the order block of the reply, nil when absent.
func (r *Response) Order() map[string]any {
	order, _ := r.Fields()["order"].(map[string]any)
	return order
}

// RegisterResponse points the payer at the processor payment page.
type RegisterResponse struct {
	Response
}

func (r *RegisterResponse) IsRedirect() bool {
	return true
}

func (r *RegisterResponse) RedirectURL() string {
	if !r.IsSuccessful() {
		return ""
	}
	return stringValue(r.Fields()["redirect_url"]) + "?session=" + r.TransactionReference()
}

func (r *RegisterResponse) TransactionReference() string {
	return stringValue(r.Fields()["session"])
}

func (r *RegisterResponse) RedirectMethod() string {
	return "GET"
}

// RedirectData is always nil, GET redirects carry no body.
func (r *RegisterResponse) RedirectData() map[string]any {
	return nil
}

type CancelResponse struct {
	Response
}

type RejectResponse struct {
	Response
}

type RefundResponse struct {
	Response
}

type ConfirmResponse struct {
	Response
}

type StatusResponse struct {
	Response
}

// OrderID is the order number as the status service reports it.
func (r *StatusResponse) OrderID() string {
	return stringValue(r.Order()["order_id"])
}
