package handlers

import "net/http"

// RefundPayment refunds a payment, optionally itemized.
// @Summary      Refund a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      RefundRequest     true  "Refund details"
// @Success      200      {object}  rest.APIResponse  "Processor answer"
// @Failure      400      {object}  rest.APIResponse  "Invalid request"
// @Failure      502      {object}  rest.APIResponse  "Processor unreachable"
// @Router       /v1/payments/refund [post]
func (h *Handlers) RefundPayment(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	builder, err := h.gateway.Refund(req.overrides())
	if err != nil {
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

	h.respond(w, resp.IsSuccessful(), newOperationResult(resp))
}

// ConfirmPayment confirms a held payment for the given amount.
// @Summary      Confirm a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      ConfirmRequest    true  "Confirmation details"
// @Success      200      {object}  rest.APIResponse  "Processor answer"
// @Failure      400      {object}  rest.APIResponse  "Invalid request"
// @Failure      502      {object}  rest.APIResponse  "Processor unreachable"
// @Router       /v1/payments/confirm [post]
func (h *Handlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	builder, err := h.gateway.Confirm(req.overrides())
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
