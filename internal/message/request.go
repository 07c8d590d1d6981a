// Package message builds processor payloads from request parameters and
// normalizes the raw results the processor sends back.
package message

import (
	"context"
	"errors"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

// baseRequest carries the parameters every operation shares. Each request
// owns its own parameter bag; nothing is shared with the gateway after
// construction.
type baseRequest struct {
	params *parameters.Bag
	dialer application.Dialer
}

func newBaseRequest(dialer application.Dialer, values parameters.Values) (baseRequest, error) {
	r := baseRequest{params: parameters.New(values), dialer: dialer}

	if r.params.Has(parameters.KeyCurrency) {
		if _, err := domain.ParseCurrency(r.params.Get(parameters.KeyCurrency)); err != nil {
			return baseRequest{}, err
		}
	}
	if r.params.Has(parameters.KeyLanguage) {
		if _, err := domain.ParseLanguage(r.params.Get(parameters.KeyLanguage)); err != nil {
			return baseRequest{}, err
		}
	}
	return r, nil
}

// value reads a parameter. The password falls back to "pass", which is the
// key the gateway defaults carry.
func (r *baseRequest) value(key string) string {
	if parameters.Canonical(key) == parameters.KeyPassword && !r.params.Has(parameters.KeyPassword) {
		return r.params.Get(parameters.KeyPass)
	}
	return r.params.Get(key)
}

// validate fails with the first missing field, named as the caller knows it.
func (r *baseRequest) validate(fields ...string) error {
	for _, field := range fields {
		if r.value(field) == "" {
			return domain.NewMissingRequiredFieldError(field)
		}
	}
	return nil
}

func (r *baseRequest) order() map[string]any {
	return map[string]any{
		"shop_id": r.ShopID(),
		"number":  r.OrderID(),
	}
}

func (r *baseRequest) cost() (map[string]any, error) {
	amount, err := domain.ParseAmount(r.Amount())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"amount":   domain.FormatAmount(amount),
		"currency": r.Currency(),
	}, nil
}

func (r *baseRequest) channelConfig() application.ChannelConfig {
	return application.ChannelConfig{
		WSDL:     r.Wsdl(),
		Endpoint: r.Endpoint(),
		User:     r.User(),
		Password: r.Password(),
	}
}

// call dials the processor and runs exactly one operation.
func (r *baseRequest) call(ctx context.Context, operation string, payload map[string]any) (application.RawResult, error) {
	if r.dialer == nil {
		return application.RawResult{}, domain.NewInvalidConfigurationError("dialer", errors.New("no channel dialer configured"))
	}

	channel, err := r.dialer.Dial(ctx, r.channelConfig())
	if err != nil {
		return application.RawResult{}, err
	}

	return channel.Call(ctx, operation, payload)
}

// Parameters returns a copy of the request parameters.
func (r *baseRequest) Parameters() parameters.Values {
	return r.params.Values()
}

func (r *baseRequest) Wsdl() string { return r.value(parameters.KeyWsdl) }
func (r *baseRequest) SetWsdl(path string) { r.params.Set(parameters.KeyWsdl, path) }
func (r *baseRequest) Endpoint() string { return r.value(parameters.KeyEndpoint) }
func (r *baseRequest) SetEndpoint(url string) { r.params.Set(parameters.KeyEndpoint, url) }
func (r *baseRequest) URLOk() string { return r.value(parameters.KeyURLOk) }
func (r *baseRequest) SetURLOk(url string) { r.params.Set(parameters.KeyURLOk, url) }
func (r *baseRequest) URLFault() string { return r.value(parameters.KeyURLFault) }
func (r *baseRequest) SetURLFault(url string) { r.params.Set(parameters.KeyURLFault, url) }
func (r *baseRequest) ShopID() string { return r.value(parameters.KeyShopID) }
func (r *baseRequest) SetShopID(id string) { r.params.Set(parameters.KeyShopID, id) }
func (r *baseRequest) OrderID() string { return r.value(parameters.KeyNumber) }
func (r *baseRequest) SetOrderID(id string) { r.params.Set(parameters.KeyNumber, id) }
func (r *baseRequest) User() string { return r.value(parameters.KeyUser) }
func (r *baseRequest) SetUser(user string) { r.params.Set(parameters.KeyUser, user) }
func (r *baseRequest) Pass() string { return r.value(parameters.KeyPass) }
func (r *baseRequest) SetPass(pass string) { r.params.Set(parameters.KeyPass, pass) }
func (r *baseRequest) Password() string { return r.value(parameters.KeyPassword) }
func (r *baseRequest) SetPassword(pass string) { r.params.Set(parameters.KeyPassword, pass) }
func (r *baseRequest) Timelimit() string { return r.value(parameters.KeyTimelimit) }
func (r *baseRequest) SetTimelimit(minutes string) { r.params.Set(parameters.KeyTimelimit, minutes) }
func (r *baseRequest) Paytype() string { return r.value(parameters.KeyPaytype) }
func (r *baseRequest) SetPaytype(paytype string) { r.params.Set(parameters.KeyPaytype, paytype) }
func (r *baseRequest) Amount() string { return r.value(parameters.KeyAmount) }
func (r *baseRequest) SetAmount(amount string) { r.params.Set(parameters.KeyAmount, amount) }
func (r *baseRequest) Currency() string { return r.value(parameters.KeyCurrency) }
func (r *baseRequest) Language() string { return r.value(parameters.KeyLanguage) }

func (r *baseRequest) SetCurrency(currency string) error {
	c, err := domain.ParseCurrency(currency)
	if err != nil {
		return err
	}
	r.params.Set(parameters.KeyCurrency, string(c))
	return nil
}

func (r *baseRequest) SetLanguage(language string) error {
	l, err := domain.ParseLanguage(language)
	if err != nil {
		return err
	}
	r.params.Set(parameters.KeyLanguage, string(l))
	return nil
}
