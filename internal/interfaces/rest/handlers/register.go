package handlers

import "net/http"

// RegisterOrder registers an order and returns the payment page the payer
// should be sent to.
// @Summary      Register an order
// @Description  Registers the order with the processor using the configured register mode. Declined orders answer 200 with success=false.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterOrderRequest  true  "Order details"
// @Success      200      {object}  rest.APIResponse      "Processor answer"
// @Failure      400      {object}  rest.APIResponse      "Invalid request"
// @Failure      502      {object}  rest.APIResponse      "Processor unreachable"
// @Router       /v1/orders/register [post]
func (h *Handlers) RegisterOrder(w http.ResponseWriter, r *http.Request) {
	var req RegisterOrderRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	builder, err := h.gateway.Register(req.overrides())
	if err != nil {
		h.fail(w, err)
		return
	}

	if err := builder.SetCustomer(req.Customer.toInput()); err != nil {
		h.fail(w, err)
		return
	}
	for _, item := range req.Items {
		in, err := item.toInput()
		if err != nil {
			h.fail(w, err)
			return
		}
		if err := builder.AddItem(in); err != nil {
			h.fail(w, err)
			return
		}
	}

	resp, err := builder.Send(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	h.respond(w, resp.IsSuccessful(), newRegisterResult(resp))
}
