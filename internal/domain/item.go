package domain

import (
	"reflect"

	"github.com/go-playground/validator"
)

// ItemDescriptor is implemented by application types that describe an order
// line without building the wire mapping themselves.
type ItemDescriptor interface {
	// OrderItemTypeName must be one of ItemTypes.
	OrderItemTypeName() string
	// OrderItemNumber is the item id inside the merchant application.
	OrderItemNumber() int
	OrderItemCost() Money
	// OrderItemHost is the distribution system, may be empty.
	OrderItemHost() string
}

// OrderItem is the stock ItemDescriptor.
type OrderItem struct {
	TypeName ItemType
	Number   int
	Cost     Money
	Host     string
}

func NewOrderItem(typeName ItemType, number int, cost Money, host string) (*OrderItem, error) {
	item := &OrderItem{TypeName: typeName, Number: number, Cost: cost, Host: host}
	if err := ValidateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *OrderItem) OrderItemTypeName() string { return string(i.TypeName) }
func (i *OrderItem) OrderItemNumber() int { return i.Number }
func (i *OrderItem) OrderItemCost() Money { return i.Cost }
func (i *OrderItem) OrderItemHost() string { return i.Host }

type itemSnapshot struct {
	TypeName string `validate:"required,itemtype"`
	Number   int    `validate:"min=0"`
	Currency string `validate:"omitempty,currency"`
	Host     string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("itemtype", func(fl validator.FieldLevel) bool {
		return ItemType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		_, err := ParseCurrency(fl.Field().String())
		return err == nil
	})
	return v
}

// isNil also catches a nil pointer stored in a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// ValidateItem checks a descriptor against the item type enumeration.
func ValidateItem(d ItemDescriptor) error {
	if isNil(d) {
		return NewInvalidItemError(nil)
	}
	cost := d.OrderItemCost()
	snap := itemSnapshot{
		TypeName: d.OrderItemTypeName(),
		Number:   d.OrderItemNumber(),
		Currency: string(cost.Currency),
		Host:     d.OrderItemHost(),
	}
	if err := validate.Struct(snap); err != nil {
		return NewInvalidItemError(err)
	}
	if cost.Amount.IsNegative() {
		return NewInvalidItemError(NewInvalidAmountError(cost.Amount.String(), nil))
	}
	return nil
}
