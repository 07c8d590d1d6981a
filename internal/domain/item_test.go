package domain_test

import (
	"testing"

	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	t.Run("creates item successfully", func(t *testing.T) {
		cost, err := domain.NewMoney(decimal.RequireFromString("10.5"), domain.CurrencyRUB)
		require.NoError(t, err)

		item, err := domain.NewOrderItem(domain.ItemAirticket, 3, cost, "sirena")
		require.NoError(t, err)

		assert.Equal(t, "airticket", item.OrderItemTypeName())
		assert.Equal(t, 3, item.OrderItemNumber())
		assert.Equal(t, "sirena", item.OrderItemHost())
		assert.True(t, cost.Amount.Equal(item.OrderItemCost().Amount))
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := domain.NewOrderItem("spaceship", 1, domain.Money{}, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidItem))
	})

	t.Run("rejects unknown cost currency", func(t *testing.T) {
		_, err := domain.NewOrderItem(domain.ItemGood, 1, domain.Money{Currency: "GBP"}, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		_, err := domain.NewOrderItem(domain.ItemGood, 1, domain.Money{Amount: decimal.NewFromInt(-1)}, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestValidateItem_Nil(t *testing.T) {
	assert.ErrorIs(t, domain.ValidateItem(nil), domain.ErrValidation)
	assert.ErrorIs(t, domain.ValidateItem((*domain.OrderItem)(nil)), domain.ErrValidation)
}

func TestValidateCustomer(t *testing.T) {
	assert.NoError(t, domain.ValidateCustomer(&domain.Customer{ID: 10, Name: "John Doe", Email: "a@b.ru"}))
	assert.NoError(t, domain.ValidateCustomer(&domain.Customer{}))

	err := domain.ValidateCustomer(&domain.Customer{Email: "nope"})
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidCustomer))

	assert.ErrorIs(t, domain.ValidateCustomer(nil), domain.ErrValidation)
	assert.ErrorIs(t, domain.ValidateCustomer((*domain.Customer)(nil)), domain.ErrValidation)
}
