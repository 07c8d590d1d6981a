package message

import (
	"context"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

// RefundRequest returns all or part of a captured payment. Partial refunds
// list the refunded items.
type RefundRequest struct {
	baseRequest
	items []map[string]any
}

func NewRefundRequest(dialer application.Dialer, values parameters.Values) (*RefundRequest, error) {
	base, err := newBaseRequest(dialer, values)
	if err != nil {
		return nil, err
	}
	return &RefundRequest{baseRequest: base}, nil
}

// PaymentID is the payment id the processor assigned on registration.
func (r *RefundRequest) PaymentID() string { return r.value(parameters.KeyPaymentID) }
func (r *RefundRequest) SetPaymentID(id string) { r.params.Set(parameters.KeyPaymentID, id) }

// TxnID is the merchant's unique refund id.
func (r *RefundRequest) TxnID() string { return r.value(parameters.KeyTxnID) }
func (r *RefundRequest) SetTxnID(id string) { r.params.Set(parameters.KeyTxnID, id) }

func (r *RefundRequest) AddItem(in ItemInput) error {
	item, err := in.resolve(func(d domain.ItemDescriptor) map[string]any {
		return map[string]any{
			"id":     d.OrderItemNumber(),
			"amount": itemCost(d.OrderItemCost(), r.Currency()),
		}
	})
	if err != nil {
		return err
	}
	r.items = append(r.items, item)
	return nil
}

func (r *RefundRequest) Items() []any {
	return cloneItems(r.items)
}

func (r *RefundRequest) Data() (map[string]any, error) {
	if err := r.validate(
		parameters.KeyShopID, parameters.AliasOrderID, parameters.KeyUser, parameters.KeyPassword,
		parameters.KeyPaymentID, parameters.KeyAmount, parameters.KeyCurrency, parameters.KeyTxnID,
	); err != nil {
		return nil, err
	}

	cost, err := r.cost()
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"order":      r.order(),
		"payment_id": r.PaymentID(),
		"cost":       cost,
		"txn_id":     r.TxnID(),
	}
	if len(r.items) > 0 {
		data["items"] = cloneItems(r.items)
	}
	return data, nil
}

func (r *RefundRequest) SendData(ctx context.Context, data map[string]any) (*RefundResponse, error) {
	result, err := r.call(ctx, "refund", data)
	if err != nil {
		return nil, err
	}
	return &RefundResponse{Response: newResponse(result)}, nil
}

func (r *RefundRequest) Send(ctx context.Context) (*RefundResponse, error) {
	data, err := r.Data()
	if err != nil {
		return nil, err
	}
	return r.SendData(ctx, data)
}
