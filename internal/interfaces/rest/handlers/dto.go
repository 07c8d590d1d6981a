package handlers

import (
	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/DanielPopoola/egopay-gateway/internal/message"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

type OrderReference struct {
	ShopID  string `json:"shop_id,omitempty" example:"16531"`
	OrderID string `json:"order_id" validate:"required" example:"100500"`
}

func (o OrderReference) overrides() parameters.Values {
	values := parameters.Values{parameters.AliasOrderID: o.OrderID}
	setIfPresent(values, parameters.KeyShopID, o.ShopID)
	return values
}

type CustomerRequest struct {
	ID    int    `json:"id" validate:"required,min=1" example:"10"`
	Name  string `json:"name" validate:"required" example:"John Doe"`
	Email string `json:"email" validate:"required,email" example:"a@b.ru"`
	Phone string `json:"phone" validate:"required" example:"+7 (999) 626-45-13"`
}

func (c CustomerRequest) toInput() message.CustomerInput {
	return message.DescribedCustomer(&domain.Customer{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	})
}

type ItemRequest struct {
	TypeName string `json:"typename" validate:"required" example:"airticket"`
	Number   int    `json:"number" validate:"min=0" example:"1"`
	Amount   string `json:"amount" validate:"required" example:"1000.00"`
	Currency string `json:"currency,omitempty" example:"RUB"`
	Host     string `json:"host,omitempty"`
}

func (i ItemRequest) toInput() (message.ItemInput, error) {
	amount, err := domain.ParseAmount(i.Amount)
	if err != nil {
		return message.ItemInput{}, domain.NewInvalidItemError(err)
	}
	cost, err := domain.NewMoney(amount, domain.Currency(i.Currency))
	if err != nil {
		return message.ItemInput{}, domain.NewInvalidItemError(err)
	}
	return message.DescribedItem(&domain.OrderItem{
		TypeName: domain.ItemType(i.TypeName),
		Number:   i.Number,
		Cost:     cost,
		Host:     i.Host,
	}), nil
}

type RegisterOrderRequest struct {
	OrderReference
	Amount       string           `json:"amount" validate:"required" example:"1000.00"`
	Currency     string           `json:"currency,omitempty" example:"RUB"`
	Language     string           `json:"language,omitempty" example:"ru"`
	RegisterMode string           `json:"register_mode,omitempty" example:"online"`
	Timelimit    string           `json:"timelimit,omitempty"`
	Paytype      string           `json:"paytype,omitempty" example:"card"`
	URLOk        string           `json:"url_ok,omitempty"`
	URLFault     string           `json:"url_fault,omitempty"`
	Customer     *CustomerRequest `json:"customer" validate:"required"`
	Items        []ItemRequest    `json:"items,omitempty" validate:"dive"`
}

func (r RegisterOrderRequest) overrides() parameters.Values {
	values := r.OrderReference.overrides()
	values[parameters.KeyAmount] = r.Amount
	setIfPresent(values, parameters.KeyCurrency, r.Currency)
	setIfPresent(values, parameters.KeyLanguage, r.Language)
	setIfPresent(values, parameters.KeyRegisterMode, r.RegisterMode)
	setIfPresent(values, parameters.KeyTimelimit, r.Timelimit)
	setIfPresent(values, parameters.KeyPaytype, r.Paytype)
	setIfPresent(values, parameters.KeyURLOk, r.URLOk)
	setIfPresent(values, parameters.KeyURLFault, r.URLFault)
	return values
}

type RefundRequest struct {
	OrderReference
	PaymentID string        `json:"payment_id" validate:"required" example:"8725"`
	RefundID  string        `json:"refund_id" validate:"required" example:"refund1_1"`
	Amount    string        `json:"amount" validate:"required" example:"500.00"`
	Currency  string        `json:"currency,omitempty" example:"RUB"`
	Items     []ItemRequest `json:"items,omitempty" validate:"dive"`
}

func (r RefundRequest) overrides() parameters.Values {
	values := r.OrderReference.overrides()
	values[parameters.KeyPaymentID] = r.PaymentID
	values[parameters.AliasRefundID] = r.RefundID
	values[parameters.KeyAmount] = r.Amount
	setIfPresent(values, parameters.KeyCurrency, r.Currency)
	return values
}

type ConfirmRequest struct {
	OrderReference
	TxnID    string `json:"txn_id" validate:"required" example:"confirm1_1"`
	Amount   string `json:"amount" validate:"required" example:"1000.00"`
	Currency string `json:"currency,omitempty" example:"RUB"`
}

func (r ConfirmRequest) overrides() parameters.Values {
	values := r.OrderReference.overrides()
	values[parameters.KeyTxnID] = r.TxnID
	values[parameters.KeyAmount] = r.Amount
	setIfPresent(values, parameters.KeyCurrency, r.Currency)
	return values
}

// Empty values would overwrite the configured defaults.
func setIfPresent(values parameters.Values, key, value string) {
	if value != "" {
		values[key] = value
	}
}

// OperationResult is the normalized processor answer.
type OperationResult struct {
	Successful bool           `json:"successful"`
	Fault      string         `json:"fault,omitempty"`
	Status     string         `json:"status,omitempty"`
	Order      map[string]any `json:"order,omitempty"`
	Fields     map[string]any `json:"fields,omitempty"`
}

type normalizedResponse interface {
	IsSuccessful() bool
	Fault() string
	Status() string
	Order() map[string]any
	Fields() map[string]any
}

func newOperationResult(resp normalizedResponse) OperationResult {
	if !resp.IsSuccessful() {
		return OperationResult{Fault: resp.Fault()}
	}
	return OperationResult{
		Successful: true,
		Status:     resp.Status(),
		Order:      resp.Order(),
		Fields:     resp.Fields(),
	}
}

type RegisterResult struct {
	OperationResult
	RedirectURL          string `json:"redirect_url,omitempty"`
	RedirectMethod       string `json:"redirect_method,omitempty"`
	TransactionReference string `json:"transaction_reference,omitempty"`
}

func newRegisterResult(resp *message.RegisterResponse) RegisterResult {
	result := RegisterResult{OperationResult: newOperationResult(resp)}
	if resp.IsSuccessful() {
		result.RedirectURL = resp.RedirectURL()
		result.RedirectMethod = resp.RedirectMethod()
		result.TransactionReference = resp.TransactionReference()
	}
	return result
}

type StatusResult struct {
	OperationResult
	OrderID string `json:"order_id,omitempty"`
}

type HealthStatus struct {
	Status   string `json:"status"`
	Gateway  string `json:"gateway"`
	TestMode bool   `json:"test_mode"`
}
