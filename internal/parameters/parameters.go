// Package parameters holds the key/value configuration bag shared by the
// gateway facade and the request builders.
package parameters

import (
	"maps"
	"slices"
)

// Parameter keys understood by the gateway and its requests.
const (
	KeyWsdl          = "wsdl"
	KeyEndpoint      = "endpoint"
	KeyURLOk         = "url_ok"
	KeyURLFault      = "url_fault"
	KeyShopID        = "shop_id"
	KeyNumber        = "number"
	KeyUser          = "user"
	KeyPass          = "pass"
	KeyPassword      = "password"
	KeyTimelimit     = "timelimit"
	KeyPaytype       = "paytype"
	KeyCurrency      = "currency"
	KeyLanguage      = "language"
	KeyAmount        = "amount"
	KeyPaymentID     = "payment_id"
	KeyTxnID         = "txn_id"
	KeyRegisterMode  = "register_mode"
	KeyCustomerID    = "customer_id"
	KeyCustomerName  = "customer_name"
	KeyCustomerEmail = "customer_email"
	KeyCustomerPhone = "customer_phone"
)

// Alias keys accepted on input and stored under their canonical key.
const (
	AliasOrderID  = "order_id"
	AliasRefundID = "refund_id"
)

var aliases = map[string]string{
	AliasOrderID:  KeyNumber,
	AliasRefundID: KeyTxnID,
}

// Canonical resolves alias keys.
func Canonical(key string) string {
	if c, ok := aliases[key]; ok {
		return c
	}
	return key
}

// Values is a plain parameter set, used for defaults and per-call overrides.
type Values map[string]string

// Bag is a mutable parameter store. A Bag is not safe for concurrent use;
// share snapshots made with Clone instead.
type Bag struct {
	values map[string]string
}

func New(values Values) *Bag {
	b := &Bag{values: make(map[string]string, len(values))}
	b.Merge(values)
	return b
}

func (b *Bag) Get(key string) string {
	return b.values[Canonical(key)]
}

func (b *Bag) Set(key, value string) {
	b.values[Canonical(key)] = value
}

// Has reports whether key holds a non-empty value.
func (b *Bag) Has(key string) bool {
	return b.values[Canonical(key)] != ""
}

// Merge overwrites existing keys with overrides. Later keys win when an
// alias and its canonical key are both present, in key order.
func (b *Bag) Merge(overrides Values) {
	for _, k := range slices.Sorted(maps.Keys(overrides)) {
		b.Set(k, overrides[k])
	}
}

func (b *Bag) Clone() *Bag {
	return &Bag{values: maps.Clone(b.values)}
}

// Values returns a copy of the stored parameters.
func (b *Bag) Values() Values {
	return Values(maps.Clone(b.values))
}

// Keys returns the stored keys in sorted order.
func (b *Bag) Keys() []string {
	return slices.Sorted(maps.Keys(b.values))
}
