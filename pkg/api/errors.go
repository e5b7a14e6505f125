package api

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/llmcouncil/councild/pkg/services"
)

// errorCodePattern decides whether a detail string doubles as a machine
// readable error code.
var errorCodePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// errorPayload builds the uniform error body: detail, the request id for
// log correlation, and error_code when the detail is itself a stable code.
func errorPayload(c *gin.Context, detail string) gin.H {
	body := gin.H{
		"detail":     detail,
		"request_id": reqID(c),
	}
	if errorCodePattern.MatchString(detail) {
		body["error_code"] = detail
	}
	return body
}

// abortError writes the error payload and stops the handler chain.
func abortError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, errorPayload(c, detail))
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		abortError(c, http.StatusBadRequest, validErr.Error())
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrForbidden):
		// Cross-account resources look identical to missing ones.
		abortError(c, http.StatusNotFound, "not_found")
	case errors.Is(err, services.ErrUnauthorized):
		abortError(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, services.ErrRateLimited):
		abortError(c, http.StatusTooManyRequests, "rate_limited")
	case errors.Is(err, services.ErrQuotaExceeded):
		abortError(c, http.StatusPaymentRequired, "quota_exceeded")
	default:
		slog.Error("Unexpected service error", "error", err, "request_id", reqID(c))
		abortError(c, http.StatusInternalServerError, "internal_error")
	}
}
