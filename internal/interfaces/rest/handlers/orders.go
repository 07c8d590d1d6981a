package handlers

import "net/http"

// CancelOrder cancels a registered order.
// @Summary      Cancel an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      OrderReference    true  "Order to cancel"
// @Success      200      {object}  rest.APIResponse  "Processor answer"
// @Failure      400      {object}  rest.APIResponse  "Invalid request"
// @Failure      502      {object}  rest.APIResponse  "Processor unreachable"
// @Router       /v1/orders/cancel [post]
func (h *Handlers) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderReference
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	builder, err := h.gateway.Cancel(req.overrides())
	if err != nil {
		h.fail(w, err)
		return
	}

	resp, err := builder.Send(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	h.respond(w, resp.IsSuccessful(), newOperationResult(resp))
}

// RejectOrder rejects a registered order.
// @Summary      Reject an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      OrderReference    true  "Order to reject"
// @Success      200      {object}  rest.APIResponse  "Processor answer"
// @Failure      400      {object}  rest.APIResponse  "Invalid request"
// @Failure      502      {object}  rest.APIResponse  "Processor unreachable"
// @Router       /v1/orders/reject [post]
func (h *Handlers) RejectOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderReference
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	builder, err := h.gateway.Reject(req.overrides())
	if err != nil {
		h.fail(w, err)
		return
	}

	resp, err := builder.Send(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	h.respond(w, resp.IsSuccessful(), newOperationResult(resp))
}
