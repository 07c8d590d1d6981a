package message

import (
	"context"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

// ConfirmRequest confirms a held payment for the given amount.
type ConfirmRequest struct {
	baseRequest
}

func NewConfirmRequest(dialer application.Dialer, values parameters.Values) (*ConfirmRequest, error) {
	base, err := newBaseRequest(dialer, values)
	if err != nil {
		return nil, err
	}
	return &ConfirmRequest{baseRequest: base}, nil
}

func (r *ConfirmRequest) TxnID() string {
	return r.value(parameters.KeyTxnID)
}

func (r *ConfirmRequest) SetTxnID(id string) {
	r.params.Set(parameters.KeyTxnID, id)
}

func (r *ConfirmRequest) Data() (map[string]any, error) {
	if err := r.validate(
		parameters.KeyShopID, parameters.AliasOrderID, parameters.KeyUser, parameters.KeyPassword,
		parameters.KeyAmount, parameters.KeyCurrency, parameters.KeyTxnID,
	); err != nil {
		return nil, err
	}

	cost, err := r.cost()
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"order":  r.order(),
		"cost":   cost,
		"txn_id": r.TxnID(),
	}, nil
}

func (r *ConfirmRequest) SendData(ctx context.Context, data map[string]any) (*ConfirmResponse, error) {
	result, err := r.call(ctx, "confirm", data)
	if err != nil {
		return nil, err
	}
	return &ConfirmResponse{Response: newResponse(result)}, nil
}

func (r *ConfirmRequest) Send(ctx context.Context) (*ConfirmResponse, error) {
	data, err := r.Data()
	if err != nil {
		return nil, err
	}
	return r.SendData(ctx, data)
}
