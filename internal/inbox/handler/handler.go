package handler

import (
	"errors"
	"io"
	"net/http"

	"wa-console/internal/apierrors"
	"wa-console/internal/inbox/processor"
	"wa-console/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.InboxProcessor
	logger    *observability.Logger
}

func New(processor processor.InboxProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SendMessageRequest represents the HTTP request for posting a message.
// Direction defaults to outbound.
type SendMessageRequest struct {
	Content      string `json:"content"`
	Type         string `json:"type"`
	Direction    string `json:"direction"`
	TemplateName string `json:"templateName"`
	LanguageCode string `json:"languageCode"`
}

type LockRequest struct {
	AgentID string `json:"agentId"`
}

type BulkAssignRequest struct {
	ConversationIDs []string `json:"conversationIds"`
	AgentID         string   `json:"agentId"`
}

func (h *Handler) HandleListConversations(c *gin.Context) {
	conversations, err := h.processor.ListConversations(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversations)
}

func (h *Handler) HandleListMessages(c *gin.Context) {
	messages, err := h.processor.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// HandleSendMessage answers 200 with the recorded message. Gateway delivery
// happens in the background.
func (h *Handler) HandleSendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	msg, err := h.processor.SendMessage(c.Request.Context(), c.Param("id"), processor.SendMessageParams{
		Direction:    req.Direction,
		Type:         req.Type,
		Content:      req.Content,
		TemplateName: req.TemplateName,
		LanguageCode: req.LanguageCode,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// HandleLockConversation locks the conversation for the agent in the body.
// An empty body locks without an agent so unknown ids still answer 404.
func (h *Handler) HandleLockConversation(c *gin.Context) {
	var req LockRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.RespondWithBindError(c, err)
		return
	}

	conv, err := h.processor.LockConversation(c.Request.Context(), c.Param("id"), req.AgentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, conv)
}

func (h *Handler) HandleUnlockConversation(c *gin.Context) {
	conv, err := h.processor.UnlockConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, conv)
}

func (h *Handler) HandleBulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	updated, err := h.processor.BulkAssign(c.Request.Context(), req.ConversationIDs, req.AgentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	apierrors.RespondWithError(c, err)
}
