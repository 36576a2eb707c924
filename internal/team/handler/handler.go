package handler

import (
	"net/http"

	"wa-console/internal/apierrors"
	"wa-console/internal/observability"
	"wa-console/internal/store"
	"wa-console/internal/team/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.TeamProcessor
	logger    *observability.Logger
}

func New(processor processor.TeamProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateMemberRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type UpdateMemberRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (h *Handler) HandleListMembers(c *gin.Context) {
	users, err := h.processor.ListMembers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) HandleAddMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	user, err := h.processor.AddMember(c.Request.Context(), store.CreateUserParams{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) HandleUpdateMember(c *gin.Context) {
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	user, err := h.processor.UpdateMember(c.Request.Context(), c.Param("id"), store.UpdateUserParams{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) HandleRemoveMember(c *gin.Context) {
	if err := h.processor.RemoveMember(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	apierrors.RespondWithError(c, err)
}
