// Package gateway is the Egopay facade: it owns the shared defaults and
// hands out independently configured requests for each operation.
package gateway

import (
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/config"
	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/DanielPopoola/egopay-gateway/internal/message"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
)

const (
	TestOrderEndpoint  = "https://tws.egopay.ru/order/v2/"
	TestStatusEndpoint = "https://tws.egopay.ru/status/v4/"
)

type Gateway struct {
	mu       sync.RWMutex
	params   *parameters.Bag
	testMode bool

	orderWsdl          string
	statusWsdl         string
	liveOrderEndpoint  string
	liveStatusEndpoint string

	dialer application.Dialer
	logger *slog.Logger
}

// New builds the facade from configuration. The order WSDL must exist, and
// live mode needs the merchant credentials up front.
func New(cfg config.EgopayConfig, dialer application.Dialer, logger *slog.Logger) (*Gateway, error) {
	if logger == nil {
		logger = slog.Default()
	}

	g := &Gateway{
		testMode:           cfg.TestMode,
		orderWsdl:          cfg.OrderWsdl,
		statusWsdl:         cfg.StatusWsdl,
		liveOrderEndpoint:  cfg.LiveOrderEndpoint,
		liveStatusEndpoint: cfg.LiveStatusEndpoint,
		dialer:             dialer,
		logger:             logger,
	}
	if !fileExists(cfg.OrderWsdl) {
		return nil, domain.NewWsdlNotFoundError(cfg.OrderWsdl)
	}
	g.params = parameters.New(g.defaultParameters())

	if cfg.StatusWsdl != "" && !fileExists(cfg.StatusWsdl) {
		return nil, domain.NewWsdlNotFoundError(cfg.StatusWsdl)
	}

	g.SetShopID(cfg.ShopID)
	g.SetUser(cfg.User)
	g.SetPass(cfg.Password)
	if cfg.URLOk != "" {
		g.SetURLOk(cfg.URLOk)
	}
	if cfg.URLFault != "" {
		g.SetURLFault(cfg.URLFault)
	}
	if cfg.Currency != "" {
		if err := g.SetCurrency(cfg.Currency); err != nil {
			return nil, err
		}
	}
	if cfg.Language != "" {
		if err := g.SetLanguage(cfg.Language); err != nil {
			return nil, err
		}
	}

	if field := missingCredential(cfg); field != "" {
		if !cfg.TestMode {
			return nil, domain.NewInvalidConfigurationError(field, errors.New("credential is not set"))
		}
		logger.Warn("merchant credential is not configured", "field", field, "test_mode", g.testMode)
	}

	if g.Endpoint() == "" {
		logger.Warn("live order endpoint is not configured", "test_mode", g.testMode)
	}

	return g, nil
}

func missingCredential(cfg config.EgopayConfig) string {
	switch {
	case cfg.ShopID == "":
		return "shop_id"
	case cfg.User == "":
		return "user"
	case cfg.Password == "":
		return "password"
	}
	return ""
}

func (g *Gateway) Name() string {
	return "Egopayment"
}

// DefaultParameters lists every option the facade recognises with its
// default value.
func (g *Gateway) DefaultParameters() parameters.Values {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.defaultParameters()
}

func (g *Gateway) defaultParameters() parameters.Values {
	return parameters.Values{
		parameters.KeyWsdl:      g.orderWsdl,
		parameters.KeyEndpoint:  g.orderEndpoint(),
		parameters.KeyURLOk:     "/ok/",
		parameters.KeyURLFault:  "/fault/",
		parameters.KeyShopID:    "",
		parameters.KeyNumber:    "",
		parameters.KeyUser:      "",
		parameters.KeyPass:      "",
		parameters.KeyTimelimit: "",
		parameters.KeyPaytype:   "card",
		parameters.KeyCurrency:  string(domain.CurrencyRUB),
		parameters.KeyLanguage:  string(domain.LanguageRU),
	}
}

// Parameters returns a copy of the current defaults.
func (g *Gateway) Parameters() parameters.Values {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.params.Values()
}

func (g *Gateway) TestMode() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.testMode
}

// SetTestMode switches modes and points the endpoint at the order service
// of the new mode.
func (g *Gateway) SetTestMode(testMode bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.testMode = testMode
	g.params.Set(parameters.KeyEndpoint, g.orderEndpoint())
}

func (g *Gateway) orderEndpoint() string {
	if g.testMode {
		return TestOrderEndpoint
	}
	return g.liveOrderEndpoint
}

func (g *Gateway) statusEndpoint() string {
	if g.testMode {
		return TestStatusEndpoint
	}
	return g.liveStatusEndpoint
}

func (g *Gateway) get(key string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.params.Get(key)
}

func (g *Gateway) set(key, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.params.Set(key, value)
}

func (g *Gateway) Wsdl() string {
	return g.get(parameters.KeyWsdl)
}

// SetWsdl fails when no file exists at path.
func (g *Gateway) SetWsdl(path string) error {
	if !fileExists(path) {
		return domain.NewWsdlNotFoundError(path)
	}
	g.set(parameters.KeyWsdl, path)
	return nil
}

func (g *Gateway) Endpoint() string {
	return g.get(parameters.KeyEndpoint)
}

// SetEndpoint selects the order or status service URL for the current mode.
func (g *Gateway) SetEndpoint(useStatusEndpoint bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if useStatusEndpoint {
		g.params.Set(parameters.KeyEndpoint, g.statusEndpoint())
		return
	}
	g.params.Set(parameters.KeyEndpoint, g.orderEndpoint())
}

// SetEndpointURL stores an explicit endpoint URL.
func (g *Gateway) SetEndpointURL(url string) {
	g.set(parameters.KeyEndpoint, url)
}

func (g *Gateway) URLOk() string { return g.get(parameters.KeyURLOk) }
func (g *Gateway) SetURLOk(url string) { g.set(parameters.KeyURLOk, url) }
func (g *Gateway) URLFault() string { return g.get(parameters.KeyURLFault) }
func (g *Gateway) SetURLFault(url string) { g.set(parameters.KeyURLFault, url) }
func (g *Gateway) ShopID() string { return g.get(parameters.KeyShopID) }
func (g *Gateway) SetShopID(id string) { g.set(parameters.KeyShopID, id) }
func (g *Gateway) OrderID() string { return g.get(parameters.KeyNumber) }
func (g *Gateway) SetOrderID(id string) { g.set(parameters.KeyNumber, id) }
func (g *Gateway) User() string { return g.get(parameters.KeyUser) }
func (g *Gateway) SetUser(user string) { g.set(parameters.KeyUser, user) }
func (g *Gateway) Pass() string { return g.get(parameters.KeyPass) }
func (g *Gateway) SetPass(pass string) { g.set(parameters.KeyPass, pass) }
func (g *Gateway) Timelimit() string { return g.get(parameters.KeyTimelimit) }
func (g *Gateway) SetTimelimit(m string) { g.set(parameters.KeyTimelimit, m) }
func (g *Gateway) Paytype() string { return g.get(parameters.KeyPaytype) }
func (g *Gateway) SetPaytype(p string) { g.set(parameters.KeyPaytype, p) }
func (g *Gateway) Currency() string { return g.get(parameters.KeyCurrency) }
func (g *Gateway) Language() string { return g.get(parameters.KeyLanguage) }

// Password reads the "password" key, which is not among the defaults.
// Requests fall back to "pass" when it is empty.
func (g *Gateway) Password() string {
	return g.get(parameters.KeyPassword)
}

func (g *Gateway) SetPassword(password string) {
	g.set(parameters.KeyPassword, password)
}

func (g *Gateway) SetCurrency(currency string) error {
	c, err := domain.ParseCurrency(currency)
	if err != nil {
		return err
	}
	g.set(parameters.KeyCurrency, string(c))
	return nil
}

func (g *Gateway) SetLanguage(language string) error {
	l, err := domain.ParseLanguage(language)
	if err != nil {
		return err
	}
	g.set(parameters.KeyLanguage, string(l))
	return nil
}

// snapshot copies the defaults and applies overrides on top.
func (g *Gateway) snapshot(overrides parameters.Values) parameters.Values {
	g.mu.RLock()
	bag := g.params.Clone()
	g.mu.RUnlock()

	bag.Merge(overrides)
	return bag.Values()
}

func (g *Gateway) Register(overrides parameters.Values) (*message.RegisterRequest, error) {
	return message.NewRegisterRequest(g.dialer, g.snapshot(overrides))
}

func (g *Gateway) Cancel(overrides parameters.Values) (*message.CancelRequest, error) {
	return message.NewCancelRequest(g.dialer, g.snapshot(overrides))
}

func (g *Gateway) Reject(overrides parameters.Values) (*message.RejectRequest, error) {
	return message.NewRejectRequest(g.dialer, g.snapshot(overrides))
}

func (g *Gateway) Refund(overrides parameters.Values) (*message.RefundRequest, error) {
	return message.NewRefundRequest(g.dialer, g.snapshot(overrides))
}

func (g *Gateway) Confirm(overrides parameters.Values) (*message.ConfirmRequest, error) {
	return message.NewConfirmRequest(g.dialer, g.snapshot(overrides))
}

// Status targets the status service: its WSDL and endpoint replace the
// order service ones unless the caller overrides them.
func (g *Gateway) Status(overrides parameters.Values) (*message.StatusRequest, error) {
	g.mu.RLock()
	bag := g.params.Clone()
	statusWsdl, statusEndpoint := g.statusWsdl, g.statusEndpoint()
	g.mu.RUnlock()

	if statusWsdl != "" {
		bag.Set(parameters.KeyWsdl, statusWsdl)
	}
	bag.Set(parameters.KeyEndpoint, statusEndpoint)
	bag.Merge(overrides)

	return message.NewStatusRequest(g.dialer, bag.Values())
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
