package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/DanielPopoola/egopay-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/egopay-gateway/internal/message"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
	"github.com/go-playground/validator"
)

// OrderGateway is the part of the gateway facade the HTTP surface drives.
type OrderGateway interface {
	Name() string
	TestMode() bool
	Register(overrides parameters.Values) (*message.RegisterRequest, error)
	Cancel(overrides parameters.Values) (*message.CancelRequest, error)
	Reject(overrides parameters.Values) (*message.RejectRequest, error)
	Refund(overrides parameters.Values) (*message.RefundRequest, error)
	Confirm(overrides parameters.Values) (*message.ConfirmRequest, error)
	Status(overrides parameters.Values) (*message.StatusRequest, error)
}

type Handlers struct {
	gateway  OrderGateway
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandlers(gateway OrderGateway, logger *slog.Logger) *Handlers {
	return &Handlers{
		gateway:  gateway,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/orders/register", h.RegisterOrder)
	mux.HandleFunc("POST /v1/orders/cancel", h.CancelOrder)
	mux.HandleFunc("POST /v1/orders/reject", h.RejectOrder)
	mux.HandleFunc("POST /v1/payments/refund", h.RefundPayment)
	mux.HandleFunc("POST /v1/payments/confirm", h.ConfirmPayment)
	mux.HandleFunc("GET /v1/orders/{shop_id}/{order_id}/status", h.GetOrderStatus)
	mux.HandleFunc("GET /healthz", h.Health)
}

func (h *Handlers) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewInvalidRequestError("request body must be a JSON object", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return domain.NewInvalidRequestError("request body failed validation", err)
	}
	return nil
}

// respond writes a processor answer. Declined operations are still a 200:
// the call went through and the fault text is data.
func (h *Handlers) respond(w http.ResponseWriter, successful bool, data any) {
	rest.WriteJSON(w, http.StatusOK, rest.APIResponse{
		Success: successful,
		Data:    data,
	})
}

func (h *Handlers) fail(w http.ResponseWriter, err error) {
	rest.WriteError(w, err, h.logger)
}
