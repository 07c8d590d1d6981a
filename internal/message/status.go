package message

import (
	"context"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

// StatusRequest looks an order up on the status service.
type StatusRequest struct {
	baseRequest
}

func NewStatusRequest(dialer application.Dialer, values parameters.Values) (*StatusRequest, error) {
	base, err := newBaseRequest(dialer, values)
	if err != nil {
		return nil, err
	}
	return &StatusRequest{baseRequest: base}, nil
}

func (r *StatusRequest) Data() (map[string]any, error) {
	if err := r.validate(
		parameters.KeyShopID, parameters.AliasOrderID, parameters.KeyUser, parameters.KeyPassword,
	); err != nil {
		return nil, err
	}
	return map[string]any{"order": r.order()}, nil
}

func (r *StatusRequest) SendData(ctx context.Context, data map[string]any) (*StatusResponse, error) {
	result, err := r.call(ctx, "get_by_order", data)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{Response: newResponse(result)}, nil
}

func (r *StatusRequest) Send(ctx context.Context) (*StatusResponse, error) {
	data, err := r.Data()
	if err != nil {
		return nil, err
	}
	return r.SendData(ctx, data)
}
