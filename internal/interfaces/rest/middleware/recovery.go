package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/interfaces/rest"
)

// Recovery turns a panicking handler into a 500 INTERNAL_ERROR response.
// http.ErrAbortHandler is re-raised so the server can drop the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				panicErr := application.NewPanicError(rec, debug.Stack())
				logger.Error("panic recovered",
					"panic", panicErr.Value,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
					"category", application.CategorizeError(panicErr),
					"stack", string(panicErr.Stack),
				)
				rest.WriteError(w, panicErr, logger)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
