package handlers

import "net/http"

// Health reports that the process is serving. It does not call the processor.
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  rest.APIResponse
// @Router   /healthz [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, true, HealthStatus{
		Status:   "ok",
		Gateway:  h.gateway.Name(),
		TestMode: h.gateway.TestMode(),
	})
}
