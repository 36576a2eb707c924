package handler

import (
	"net/http"

	"wa-console/internal/apierrors"
	"wa-console/internal/observability"
	"wa-console/internal/templates/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.TemplateProcessor
	logger    *observability.Logger
}

func New(processor processor.TemplateProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListTemplates always answers 200; gateway trouble degrades to the cached list.
func (h *Handler) HandleListTemplates(c *gin.Context) {
	templates, err := h.processor.ListTemplates(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}
