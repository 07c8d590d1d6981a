package handlers

import (
	"net/http"

	"github.com/DanielPopoola/egopay-gateway/internal/domain"
	"github.com/DanielPopoola/egopay-gateway/internal/parameters"
	"github.com/oapi-codegen/runtime"
)

// GetOrderStatus asks the status service about an order.
// @Summary      Order status
// @Tags         orders
// @Produce      json
// @Param        shop_id   path      string            true  "Shop id"
// @Param        order_id  path      string            true  "Order number"
// @Success      200       {object}  rest.APIResponse  "Processor answer"
// @Failure      400       {object}  rest.APIResponse  "Invalid request"
// @Failure      502       {object}  rest.APIResponse  "Processor unreachable"
// @Router       /v1/orders/{shop_id}/{order_id}/status [get]
func (h *Handlers) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	var shopID, orderID string

	if err := bindPathParameter(r, "shop_id", &shopID); err != nil {
		h.fail(w, err)
		return
	}
	if err := bindPathParameter(r, "order_id", &orderID); err != nil {
		h.fail(w, err)
		return
	}

	builder, err := h.gateway.Status(parameters.Values{
		parameters.KeyShopID:    shopID,
		parameters.AliasOrderID: orderID,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	resp, err := builder.Send(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	result := StatusResult{OperationResult: newOperationResult(resp)}
	if resp.IsSuccessful() {
		result.OrderID = resp.OrderID()
	}
	h.respond(w, resp.IsSuccessful(), result)
}

func bindPathParameter(r *http.Request, name string, dst *string) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), dst,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return domain.NewInvalidRequestError("invalid format for parameter "+name, err)
	}
	return nil
}
