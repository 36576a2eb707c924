package apierrors

import (
	"context"
	"net/http"
	"sync/atomic"

	"wa-console/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger atomic.Pointer[observability.Logger]

func init() {
	logger.Store(observability.NewNopLogger())
}

// SetLogger routes error response logging through l. Bootstrap calls it once
// so these entries share the server's level and encoding.
func SetLogger(l *observability.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

// ErrorResponse is the body of every non-404 error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondWithError aborts the request with the status MapError picks for err.
// 404s carry no body; everything else gets an ErrorResponse with a sanitized
// message.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
	)
	logResponse(ctx, apiErr)

	if apiErr.StatusCode == http.StatusNotFound {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{Error: apiErr.Message, Code: apiErr.Code})
}

// RespondWithBindError answers a body that did not decode. Requests have no
// field-level validation, so this only fires on malformed JSON.
func RespondWithBindError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	logger.Load().InfoWithError(c.Request.Context(), "request body rejected", err)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request format. Please check your JSON syntax.",
		Code:  CodeInvalidInput,
	})
}

func logResponse(ctx context.Context, apiErr *APIError) {
	l := logger.Load()
	if apiErr.StatusCode >= http.StatusInternalServerError {
		l.Error(ctx, "request failed", apiErr.Err)
		return
	}
	l.Info(ctx, "request rejected")
}
