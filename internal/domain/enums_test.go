package domain_test

import (
	"testing"

	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	for _, c := range []string{"RUB", "EUR", "USD"} {
		got, err := domain.ParseCurrency(c)
		require.NoError(t, err)
		assert.Equal(t, domain.Currency(c), got)
	}

	for _, c := range []string{"", "rub", "GBP", "RUB "} {
		_, err := domain.ParseCurrency(c)
		assert.ErrorIs(t, err, domain.ErrValidation, c)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidCurrency))
	}
}

func TestParseLanguage(t *testing.T) {
	for _, l := range []string{"ru", "en", "de", "cn"} {
		got, err := domain.ParseLanguage(l)
		require.NoError(t, err)
		assert.Equal(t, domain.Language(l), got)
	}

	_, err := domain.ParseLanguage("fr")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "ru, en, de, cn")
}

func TestRegisterMode_Operation(t *testing.T) {
	tests := map[string]string{
		"online":  "register_online",
		"offline": "register_offline",
		"simple":  "register_simple",
	}
	for mode, op := range tests {
		m, err := domain.ParseRegisterMode(mode)
		require.NoError(t, err)
		assert.Equal(t, op, m.Operation())
	}

	_, err := domain.ParseRegisterMode("express")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidRegisterMode))

	assert.Equal(t, "register_online", domain.RegisterMode("").Operation())
}

func TestItemType_Valid(t *testing.T) {
	for _, it := range domain.ItemTypes {
		assert.True(t, it.Valid())
	}
	assert.False(t, domain.ItemType("spaceship").Valid())
	assert.False(t, domain.ItemType("").Valid())
}
