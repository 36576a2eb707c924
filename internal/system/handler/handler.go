package handler

import (
	"net/http"

	"wa-console/internal/apierrors"
	"wa-console/internal/observability"
	"wa-console/internal/store"
	"wa-console/internal/system/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.SystemProcessor
	logger    *observability.Logger
}

func New(processor processor.SystemProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type UpdateProtectionRequest struct {
	MaxMessagesPerMinute   *int    `json:"maxMessagesPerMinute,omitempty"`
	WarmupEnabled          *bool   `json:"warmupEnabled,omitempty"`
	BlockOnHighFailureRate *bool   `json:"blockOnHighFailureRate,omitempty"`
	FailureRateThreshold   *int    `json:"failureRateThreshold,omitempty"`
	QuietHoursEnabled      *bool   `json:"quietHoursEnabled,omitempty"`
	QuietHoursStart        *string `json:"quietHoursStart,omitempty"`
	QuietHoursEnd          *string `json:"quietHoursEnd,omitempty"`
}

func (h *Handler) HandleGetQueueStats(c *gin.Context) {
	stats, err := h.processor.QueueStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) HandleGetProtection(c *gin.Context) {
	settings, err := h.processor.GetProtectionSettings(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handler) HandleUpdateProtection(c *gin.Context) {
	var req UpdateProtectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	settings, err := h.processor.UpdateProtectionSettings(c.Request.Context(), store.UpdateProtectionSettingsParams{
		MaxMessagesPerMinute:   req.MaxMessagesPerMinute,
		WarmupEnabled:          req.WarmupEnabled,
		BlockOnHighFailureRate: req.BlockOnHighFailureRate,
		FailureRateThreshold:   req.FailureRateThreshold,
		QuietHoursEnabled:      req.QuietHoursEnabled,
		QuietHoursStart:        req.QuietHoursStart,
		QuietHoursEnd:          req.QuietHoursEnd,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
