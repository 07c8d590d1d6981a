package message

import (
	"context"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

// RegisterRequest registers an order and returns the payment page session.
type RegisterRequest struct {
	baseRequest
	items []map[string]any
}

func NewRegisterRequest(dialer application.Dialer, values parameters.Values) (*RegisterRequest, error) {
	base, err := newBaseRequest(dialer, values)
	if err != nil {
		return nil, err
	}
	r := &RegisterRequest{baseRequest: base}

	if r.params.Has(parameters.KeyRegisterMode) {
		if err := r.SetRegisterMode(r.params.Get(parameters.KeyRegisterMode)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *RegisterRequest) RegisterMode() domain.RegisterMode {
	if !r.params.Has(parameters.KeyRegisterMode) {
		return domain.DefaultRegisterMode
	}
	return domain.RegisterMode(r.params.Get(parameters.KeyRegisterMode))
}

func (r *RegisterRequest) SetRegisterMode(mode string) error {
	m, err := domain.ParseRegisterMode(mode)
	if err != nil {
		return err
	}
	r.params.Set(parameters.KeyRegisterMode, string(m))
	return nil
}

func (r *RegisterRequest) CustomerID() string { return r.value(parameters.KeyCustomerID) }
func (r *RegisterRequest) CustomerName() string { return r.value(parameters.KeyCustomerName) }
func (r *RegisterRequest) CustomerEmail() string { return r.value(parameters.KeyCustomerEmail) }
func (r *RegisterRequest) CustomerPhone() string { return r.value(parameters.KeyCustomerPhone) }

// SetCustomer replaces all four customer fields at once.
func (r *RegisterRequest) SetCustomer(in CustomerInput) error {
	c, err := in.resolve()
	if err != nil {
		return err
	}
	r.params.Set(parameters.KeyCustomerID, c.id)
	r.params.Set(parameters.KeyCustomerName, c.name)
	r.params.Set(parameters.KeyCustomerEmail, c.email)
	r.params.Set(parameters.KeyCustomerPhone, c.phone)
	return nil
}

// AddItem appends an order line. Descriptor costs without a currency take
// the request currency.
func (r *RegisterRequest) AddItem(in ItemInput) error {
	item, err := in.resolve(func(d domain.ItemDescriptor) map[string]any {
		return map[string]any{
			"typename": d.OrderItemTypeName(),
			"number":   d.OrderItemNumber(),
			"amount":   itemCost(d.OrderItemCost(), r.Currency()),
			"host":     d.OrderItemHost(),
		}
	})
	if err != nil {
		return err
	}
	r.items = append(r.items, item)
	return nil
}

func (r *RegisterRequest) Items() []any {
	return cloneItems(r.items)
}

func (r *RegisterRequest) Data() (map[string]any, error) {
	if err := r.validate(
		parameters.KeyShopID, parameters.KeyNumber, parameters.KeyAmount, parameters.KeyCurrency,
		parameters.KeyCustomerID, parameters.KeyCustomerName, parameters.KeyCustomerEmail, parameters.KeyCustomerPhone,
	); err != nil {
		return nil, err
	}

	cost, err := r.cost()
	if err != nil {
		return nil, err
	}

	description := map[string]any{
		"timelimit": r.Timelimit(),
		"paytype":   r.Paytype(),
	}
	if len(r.items) > 0 {
		description["items"] = cloneItems(r.items)
	}

	data := map[string]any{
		"order":       r.order(),
		"cost":        cost,
		"description": description,
		"postdata": []any{
			map[string]any{"name": "Language", "value": r.Language()},
			map[string]any{"name": "ReturnURLOk", "value": r.URLOk()},
			map[string]any{"name": "ReturnURLFault", "value": r.URLFault()},
			map[string]any{"name": "ChoosenCardType", "value": "VI"},
		},
	}

	if r.CustomerID() != "" {
		data["customer"] = map[string]any{
			"id":    r.CustomerID(),
			"name":  r.CustomerName(),
			"email": r.CustomerEmail(),
			"phone": r.CustomerPhone(),
		}
	}

	return data, nil
}

func (r *RegisterRequest) SendData(ctx context.Context, data map[string]any) (*RegisterResponse, error) {
	result, err := r.call(ctx, r.RegisterMode().Operation(), data)
	if err != nil {
		return nil, err
	}
	return &RegisterResponse{Response: newResponse(result)}, nil
}

func (r *RegisterRequest) Send(ctx context.Context) (*RegisterResponse, error) {
	data, err := r.Data()
	if err != nil {
		return nil, err
	}
	return r.SendData(ctx, data)
}
