package domain

import "slices"

// Currency is an ISO code accepted by the processor.
type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// Currencies is the single table every component checks currencies against.
var Currencies = []Currency{CurrencyRUB, CurrencyEUR, CurrencyUSD}

func ParseCurrency(value string) (Currency, error) {
	c := Currency(value)
	if !slices.Contains(Currencies, c) {
		return "", NewInvalidCurrencyError(value)
	}
	return c, nil
}

func currencyNames() []string {
	names := make([]string, len(Currencies))
	for i, c := range Currencies {
		names[i] = string(c)
	}
	return names
}

// Language selects the payment page locale.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
	LanguageDE Language = "de"
	LanguageCN Language = "cn"
)

var Languages = []Language{LanguageRU, LanguageEN, LanguageDE, LanguageCN}

func ParseLanguage(value string) (Language, error) {
	l := Language(value)
	if !slices.Contains(Languages, l) {
		return "", NewInvalidLanguageError(value)
	}
	return l, nil
}

func languageNames() []string {
	names := make([]string, len(Languages))
	for i, l := range Languages {
		names[i] = string(l)
	}
	return names
}

// RegisterMode picks which register_* operation an order is registered with.
//
//	online  - regular online shops
//	offline - offline payments
//	simple  - simplified registration
type RegisterMode string

const (
	RegisterOnline  RegisterMode = "online"
	RegisterOffline RegisterMode = "offline"
	RegisterSimple  RegisterMode = "simple"
)

// DefaultRegisterMode is used when no mode was set.
const DefaultRegisterMode = RegisterOnline

var registerOperations = map[RegisterMode]string{
	RegisterOnline:  "register_online",
	RegisterOffline: "register_offline",
	RegisterSimple:  "register_simple",
}

func ParseRegisterMode(value string) (RegisterMode, error) {
	m := RegisterMode(value)
	if _, ok := registerOperations[m]; !ok {
		return "", NewInvalidRegisterModeError(value)
	}
	return m, nil
}

// Operation returns the processor operation name for the mode.
func (m RegisterMode) Operation() string {
	if op, ok := registerOperations[m]; ok {
		return op
	}
	return registerOperations[DefaultRegisterMode]
}

// ItemType is the product category of an order line.
type ItemType string

const (
	ItemAirticket ItemType = "airticket"
	ItemInsurance ItemType = "insurance"
	ItemAezh      ItemType = "aezh"
	ItemService   ItemType = "service"
	ItemHotel     ItemType = "hotel"
	ItemGood      ItemType = "good"
	ItemContract  ItemType = "contract"
)

var ItemTypes = []ItemType{
	ItemAirticket, ItemInsurance, ItemAezh, ItemService, ItemHotel, ItemGood, ItemContract,
}

func (t ItemType) Valid() bool {
	return slices.Contains(ItemTypes, t)
}
