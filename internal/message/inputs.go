package message

import (
	"fmt"

	"github.com/DanielPopoola/egopay-gateway/internal/domain"
)

// ItemInput is either a raw field mapping, stored as given, or an item
// descriptor converted to the canonical item shape.
type ItemInput struct {
	raw        map[string]any
	descriptor domain.ItemDescriptor
}

func RawItem(fields map[string]any) ItemInput {
	return ItemInput{raw: cloneMap(fields)}
}

func DescribedItem(d domain.ItemDescriptor) ItemInput {
	return ItemInput{descriptor: d}
}

// resolve returns the stored mapping for raw input, or shape applied to a
// validated descriptor.
func (in ItemInput) resolve(shape func(domain.ItemDescriptor) map[string]any) (map[string]any, error) {
	switch {
	case len(in.raw) > 0:
		return cloneMap(in.raw), nil
	case in.descriptor != nil:
		if err := domain.ValidateItem(in.descriptor); err != nil {
			return nil, err
		}
		return shape(in.descriptor), nil
	}
	return nil, domain.NewInvalidItemError(nil)
}

func itemCost(cost domain.Money, currency string) map[string]any {
	cost = cost.WithDefaultCurrency(domain.Currency(currency))
	return map[string]any{
		"amount":   domain.FormatAmount(cost.Amount),
		"currency": string(cost.Currency),
	}
}

// CustomerInput is either a raw mapping with id, name, email and phone keys
// or a customer descriptor.
type CustomerInput struct {
	raw        map[string]any
	descriptor domain.CustomerDescriptor
}

func RawCustomer(fields map[string]any) CustomerInput {
	return CustomerInput{raw: cloneMap(fields)}
}

func DescribedCustomer(d domain.CustomerDescriptor) CustomerInput {
	return CustomerInput{descriptor: d}
}

type customerFields struct {
	id, name, email, phone string
}

func (in CustomerInput) resolve() (customerFields, error) {
	switch {
	case len(in.raw) > 0:
		return customerFields{
			id:    customerID(in.raw["id"]),
			name:  stringValue(in.raw["name"]),
			email: stringValue(in.raw["email"]),
			phone: stringValue(in.raw["phone"]),
		}, nil
	case in.descriptor != nil:
		if err := domain.ValidateCustomer(in.descriptor); err != nil {
			return customerFields{}, err
		}
		return customerFields{
			id:    customerID(in.descriptor.CustomerID()),
			name:  in.descriptor.CustomerName(),
			email: in.descriptor.CustomerEmail(),
			phone: in.descriptor.CustomerPhone(),
		}, nil
	}
	return customerFields{}, domain.NewInvalidCustomerError(nil)
}

// customerID maps a zero id to an absent one; anonymous payers get no
// customer block.
func customerID(v any) string {
	id := stringValue(v)
	if id == "0" {
		return ""
	}
	return id
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprint(v)
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

func cloneItems(items []map[string]any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = cloneMap(item)
	}
	return out
}
