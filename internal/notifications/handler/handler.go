package handler

import (
	"net/http"

	"wa-console/internal/apierrors"
	"wa-console/internal/notifications/processor"
	"wa-console/internal/observability"
	"wa-console/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.NotificationProcessor
	logger    *observability.Logger
}

func New(processor processor.NotificationProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateNotificationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
}

func (h *Handler) HandleListNotifications(c *gin.Context) {
	notifications, err := h.processor.ListNotifications(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) HandleCreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	n, err := h.processor.CreateNotification(c.Request.Context(), store.CreateNotificationParams{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, n)
}

// HandleMarkRead marks :id read. The id "all" marks the whole feed.
func (h *Handler) HandleMarkRead(c *gin.Context) {
	updated, err := h.processor.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}
