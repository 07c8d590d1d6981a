// Package rest exposes the gateway operations as a JSON HTTP API.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/domain"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)
	category := application.CategorizeError(err)

	apiErr := &APIError{
		Code:    application.ToErrorCode(err),
		Message: err.Error(),
	}
	if domainErr, ok := domain.IsDomainError(err); ok {
		apiErr.Message = domainErr.Error()
		apiErr.Field = domainErr.Field
	}
	if _, ok := application.IsPanicError(err); ok {
		apiErr.Message = "An internal error occurred"
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"category", category,
			"code", apiErr.Code,
			"error", err,
		)
	} else {
		logger.Debug("request rejected",
			"category", category,
			"code", apiErr.Code,
			"error", err,
		)
	}

	WriteJSON(w, statusCode, APIResponse{Success: false, Error: apiErr})
}
