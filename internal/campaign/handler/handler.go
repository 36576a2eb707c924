package handler

import (
	"net/http"

	"wa-console/internal/apierrors"
	"wa-console/internal/campaign/processor"
	"wa-console/internal/observability"
	"wa-console/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// AudienceRequest selects recipients by list and tag
type AudienceRequest struct {
	ListIDs []string `json:"listIds"`
	TagIDs  []string `json:"tagIds"`
}

// StatsRequest carries client-supplied delivery counters
type StatsRequest struct {
	Total     int `json:"total"`
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Read      int `json:"read"`
	Failed    int `json:"failed"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Title        string           `json:"title"`
	Type         string           `json:"type"`
	Status       string           `json:"status"`
	TemplateID   string           `json:"templateId"`
	TemplateName string           `json:"templateName"`
	Audience     *AudienceRequest `json:"audience,omitempty"`
	RetryFailed  bool             `json:"retryFailed"`
	ThrottleRate int              `json:"throttleRate"`
	EmailReport  bool             `json:"emailReport"`
	Stats        *StatsRequest    `json:"stats,omitempty"`
}

// UpdateCampaignRequest represents the HTTP request for updating a campaign.
// Omitted fields are left unchanged.
type UpdateCampaignRequest struct {
	Title        *string          `json:"title,omitempty"`
	Type         *string          `json:"type,omitempty"`
	Status       *string          `json:"status,omitempty"`
	TemplateID   *string          `json:"templateId,omitempty"`
	TemplateName *string          `json:"templateName,omitempty"`
	Audience     *AudienceRequest `json:"audience,omitempty"`
	RetryFailed  *bool            `json:"retryFailed,omitempty"`
	ThrottleRate *int             `json:"throttleRate,omitempty"`
	EmailReport  *bool            `json:"emailReport,omitempty"`
	Stats        *StatsRequest    `json:"stats,omitempty"`
}

// HandleListCampaigns lists every campaign
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	campaigns, err := h.processor.ListCampaigns(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// HandleGetCampaign returns a single campaign
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	campaign, err := h.processor.GetCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_title", Value: req.Title})

	params := store.CreateCampaignParams{
		Title:        req.Title,
		Type:         req.Type,
		Status:       req.Status,
		TemplateID:   req.TemplateID,
		TemplateName: req.TemplateName,
		RetryFailed:  req.RetryFailed,
		ThrottleRate: req.ThrottleRate,
		EmailReport:  req.EmailReport,
	}
	if req.Audience != nil {
		params.Audience = toAudience(req.Audience)
	}
	if req.Stats != nil {
		params.Stats = toStats(req.Stats)
	}

	campaign, err := h.processor.CreateCampaign(ctx, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleUpdateCampaign applies a partial update to a campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	params := store.UpdateCampaignParams{
		Title:        req.Title,
		Type:         req.Type,
		Status:       req.Status,
		TemplateID:   req.TemplateID,
		TemplateName: req.TemplateName,
		RetryFailed:  req.RetryFailed,
		ThrottleRate: req.ThrottleRate,
		EmailReport:  req.EmailReport,
	}
	if req.Audience != nil {
		audience := toAudience(req.Audience)
		params.Audience = &audience
	}
	if req.Stats != nil {
		stats := toStats(req.Stats)
		params.Stats = &stats
	}

	campaign, err := h.processor.UpdateCampaign(ctx, c.Param("id"), params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleToggleCampaign flips a campaign between running and paused
func (h *Handler) HandleToggleCampaign(c *gin.Context) {
	campaign, err := h.processor.ToggleCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	apierrors.RespondWithError(c, err)
}

func toAudience(req *AudienceRequest) store.CampaignAudience {
	return store.CampaignAudience{ListIDs: req.ListIDs, TagIDs: req.TagIDs}
}

func toStats(req *StatsRequest) store.CampaignStats {
	return store.CampaignStats{
		Total:     req.Total,
		Sent:      req.Sent,
		Delivered: req.Delivered,
		Read:      req.Read,
		Failed:    req.Failed,
	}
}
