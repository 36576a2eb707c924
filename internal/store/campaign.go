package store

import (
	"context"
	"time"
)

// Campaign is a broadcast or transactional send definition
type Campaign struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Type         string           `json:"type"`
	Status       string           `json:"status"`
	TemplateID   string           `json:"templateId"`
	TemplateName string           `json:"templateName"`
	Audience     CampaignAudience `json:"audience"`
	RetryFailed  bool             `json:"retryFailed"`
	ThrottleRate int              `json:"throttleRate"`
	EmailReport  bool             `json:"emailReport"`
	Stats        CampaignStats    `json:"stats"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type CampaignAudience struct {
	ListIDs []string `json:"listIds"`
	TagIDs  []string `json:"tagIds"`
}

type CampaignStats struct {
	Total     int `json:"total"`
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Read      int `json:"read"`
	Failed    int `json:"failed"`
}

type CreateCampaignParams struct {
	Title        string
	Type         string
	Status       string
	TemplateID   string
	TemplateName string
	Audience     CampaignAudience
	RetryFailed  bool
	ThrottleRate int
	EmailReport  bool
	Stats        CampaignStats
}

// UpdateCampaignParams lists the client-writable fields of a Campaign. Nil means unchanged.
type UpdateCampaignParams struct {
	Title        *string
	Type         *string
	Status       *string
	TemplateID   *string
	TemplateName *string
	Audience     *CampaignAudience
	RetryFailed  *bool
	ThrottleRate *int
	EmailReport  *bool
	Stats        *CampaignStats
}

func (s *Store) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Campaign, len(s.campaigns))
	for i, c := range s.campaigns {
		out[i] = c.clone()
	}
	return out, nil
}

func (s *Store) GetCampaignByID(ctx context.Context, id string) (Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.campaignIndex(id)
	if i < 0 {
		return Campaign{}, ErrNotFound
	}
	return s.campaigns[i].clone(), nil
}

func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	campaign := Campaign{
		ID:           s.newID(),
		Title:        params.Title,
		Type:         params.Type,
		Status:       params.Status,
		TemplateID:   params.TemplateID,
		TemplateName: params.TemplateName,
		Audience:     params.Audience,
		RetryFailed:  params.RetryFailed,
		ThrottleRate: params.ThrottleRate,
		EmailReport:  params.EmailReport,
		Stats:        params.Stats,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if campaign.Type == "" {
		campaign.Type = CampaignTypeBroadcast
	}
	if campaign.Status == "" {
		campaign.Status = CampaignStatusDraft
	}
	campaign = campaign.clone()
	s.campaigns = append(s.campaigns, campaign)
	return campaign.clone(), nil
}

func (s *Store) UpdateCampaign(ctx context.Context, id string, params UpdateCampaignParams) (Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.campaignIndex(id)
	if i < 0 {
		return Campaign{}, ErrNotFound
	}
	c := &s.campaigns[i]
	if params.Title != nil {
		c.Title = *params.Title
	}
	if params.Type != nil {
		c.Type = *params.Type
	}
	if params.Status != nil {
		c.Status = *params.Status
	}
	if params.TemplateID != nil {
		c.TemplateID = *params.TemplateID
	}
	if params.TemplateName != nil {
		c.TemplateName = *params.TemplateName
	}
	if params.Audience != nil {
		c.Audience = CampaignAudience{
			ListIDs: cloneStrings(params.Audience.ListIDs),
			TagIDs:  cloneStrings(params.Audience.TagIDs),
		}
	}
	if params.RetryFailed != nil {
		c.RetryFailed = *params.RetryFailed
	}
	if params.ThrottleRate != nil {
		c.ThrottleRate = *params.ThrottleRate
	}
	if params.EmailReport != nil {
		c.EmailReport = *params.EmailReport
	}
	if params.Stats != nil {
		c.Stats = *params.Stats
	}
	c.UpdatedAt = s.now()
	return c.clone(), nil
}

// UpdateCampaignStatus applies transition to the current status under the
// store lock so concurrent toggles never read a stale status.
func (s *Store) UpdateCampaignStatus(ctx context.Context, id string, transition func(current string) string) (Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.campaignIndex(id)
	if i < 0 {
		return Campaign{}, ErrNotFound
	}
	c := &s.campaigns[i]
	next := transition(c.Status)
	if next != c.Status {
		c.Status = next
		c.UpdatedAt = s.now()
	}
	return c.clone(), nil
}

func (s *Store) campaignIndex(id string) int {
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			return i
		}
	}
	return -1
}

func (c Campaign) clone() Campaign {
	c.Audience = CampaignAudience{
		ListIDs: cloneStrings(c.Audience.ListIDs),
		TagIDs:  cloneStrings(c.Audience.TagIDs),
	}
	return c
}

// cloneStrings copies a slice. nil comes back empty so JSON renders [].
func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append(make([]string, 0, len(in)), in...)
}
