package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Money is an amount with an optional currency. An empty currency means
// "use the currency of the enclosing request".
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errors.New("amount cannot be negative")
	}
	if currency != "" {
		if _, err := ParseCurrency(string(currency)); err != nil {
			return Money{}, err
		}
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// ParseAmount parses a decimal amount as the processor expects it.
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, NewInvalidAmountError(value, err)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, NewInvalidAmountError(value, errors.New("amount cannot be negative"))
	}
	return amount, nil
}

// FormatAmount renders an amount with two fraction digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// WithDefaultCurrency fills an empty currency.
func (m Money) WithDefaultCurrency(currency Currency) Money {
	if m.Currency == "" {
		m.Currency = currency
	}
	return m
}
