package handler

import (
	"errors"
	"net/http"
	"strconv"

	"wa-console/internal/analytics/processor"
	"wa-console/internal/apierrors"
	"wa-console/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetSummary handles GET /api/analytics/summary
func (h *Handler) HandleGetSummary(c *gin.Context) {
	summary, err := h.processor.GetSummary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HandleGetTimeline handles GET /api/analytics/timeline?days=N
func (h *Handler) HandleGetTimeline(c *gin.Context) {
	ctx := c.Request.Context()

	days := processor.DefaultTimelineDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.InfoWithError(ctx, "failed to parse days", err)
			h.handleError(c, processor.ErrInvalidDays)
			return
		}
		days = parsed
	}

	timeline, err := h.processor.GetTimeline(ctx, days)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidDays):
		apierrors.RespondWithError(c, apierrors.BadRequest("INVALID_DAYS", "days must be between 1 and 90"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
