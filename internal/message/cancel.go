package message

import (
	"context"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

// CancelRequest cancels an order that has not been paid yet.
type CancelRequest struct {
	baseRequest
}

func NewCancelRequest(dialer application.Dialer, values parameters.Values) (*CancelRequest, error) {
	base, err := newBaseRequest(dialer, values)
	if err != nil {
		return nil, err
	}
	return &CancelRequest{baseRequest: base}, nil
}

func (r *CancelRequest) Data() (map[string]any, error) {
	if err := r.validate(
		parameters.KeyShopID, parameters.AliasOrderID, parameters.KeyUser, parameters.KeyPassword,
	); err != nil {
		return nil, err
	}
	return map[string]any{"order": r.order()}, nil
}

func (r *CancelRequest) SendData(ctx context.Context, data map[string]any) (*CancelResponse, error) {
	result, err := r.call(ctx, "cancel", data)
	if err != nil {
		return nil, err
	}
	return &CancelResponse{Response: newResponse(result)}, nil
}

func (r *CancelRequest) Send(ctx context.Context) (*CancelResponse, error) {
	data, err := r.Data()
	if err != nil {
		return nil, err
	}
	return r.SendData(ctx, data)
}
