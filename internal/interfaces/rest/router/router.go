// Package router assembles the HTTP surface: routes, docs, metrics and the
// middleware chain.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/egopay-gateway/internal/interfaces/rest/docs"
	"github.com/DanielPopoola/egopay-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/egopay-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/egopay-gateway/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	Gateway  handlers.OrderGateway
	Gatherer prometheus.Gatherer
	Timeout  time.Duration
	Logger   *slog.Logger
}

func New(opts Options) (http.Handler, error) {
	mux := http.NewServeMux()
	handlers.NewHandlers(opts.Gateway, opts.Logger).RegisterRoutes(mux)
	docs.RegisterRoutes(mux)
	if opts.Gatherer != nil {
		mux.Handle("GET /metrics", metrics.Handler(opts.Gatherer))
	}

	validator, err := middleware.OpenAPIValidator(docs.OpenAPI, opts.Logger)
	if err != nil {
		return nil, err
	}

	handler := middleware.Recovery(opts.Logger)(validator(mux))
	handler = middleware.Logging(opts.Logger)(handler)
	if opts.Timeout > 0 {
		handler = middleware.Timeout(opts.Timeout)(handler)
	}
	return handler, nil
}
