package message

import (
	"context"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

// RejectRequest rejects a paid order, returning the funds to the payer.
type RejectRequest struct {
	baseRequest
}

func NewRejectRequest(dialer application.Dialer, values parameters.Values) (*RejectRequest, error) {
	base, err := newBaseRequest(dialer, values)
	if err != nil {
		return nil, err
	}
	return &RejectRequest{baseRequest: base}, nil
}

func (r *RejectRequest) Data() (map[string]any, error) {
	if err := r.validate(
		parameters.KeyShopID, parameters.AliasOrderID, parameters.KeyUser, parameters.KeyPassword,
	); err != nil {
		return nil, err
	}
	return map[string]any{"order": r.order()}, nil
}

func (r *RejectRequest) SendData(ctx context.Context, data map[string]any) (*RejectResponse, error) {
	result, err := r.call(ctx, "reject", data)
	if err != nil {
		return nil, err
	}
	return &RejectResponse{Response: newResponse(result)}, nil
}

func (r *RejectRequest) Send(ctx context.Context) (*RejectResponse, error) {
	data, err := r.Data()
	if err != nil {
		return nil, err
	}
	return r.SendData(ctx, data)
}
