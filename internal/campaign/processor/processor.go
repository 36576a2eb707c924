package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"wa-console/internal/observability"
	"wa-console/internal/store"
	"wa-console/internal/ws"
)

// CampaignStore defines the store operations required by CampaignProcessor
type CampaignStore interface {
	ListCampaigns(ctx context.Context) ([]store.Campaign, error)
	GetCampaignByID(ctx context.Context, id string) (store.Campaign, error)
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, params store.UpdateCampaignParams) (store.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id string, transition func(current string) string) (store.Campaign, error)
}

// EventPublisher pushes live updates to connected consoles
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{})
}

var ErrCampaignNotFound = fmt.Errorf("campaign %w", store.ErrNotFound)

type CampaignProcessor struct {
	store     CampaignStore
	publisher EventPublisher
	logger    *observability.Logger
}

func New(store CampaignStore, publisher EventPublisher, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// NextToggleStatus is the campaign toggle rule: RUNNING pauses, PAUSED and
// DRAFT start running, anything else stays as it is.
func NextToggleStatus(current string) string {
	switch current {
	case store.CampaignStatusRunning:
		return store.CampaignStatusPaused
	case store.CampaignStatusPaused, store.CampaignStatusDraft:
		return store.CampaignStatusRunning
	default:
		return current
	}
}

func (p *CampaignProcessor) ListCampaigns(ctx context.Context) ([]store.Campaign, error) {
	campaigns, err := p.store.ListCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID string) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_type", Value: params.Type},
		observability.Field{Key: "campaign_status", Value: params.Status},
	)

	campaign, err := p.store.CreateCampaign(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})
	p.logger.Info(ctx, "campaign created successfully")
	p.publisher.Publish(ctx, ws.EventCampaignUpdated, campaign)
	return campaign, nil
}

func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, campaignID string, params store.UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	campaign, err := p.store.UpdateCampaign(ctx, campaignID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign updated successfully")
	p.publisher.Publish(ctx, ws.EventCampaignUpdated, campaign)
	return campaign, nil
}

// ToggleCampaign flips a campaign between running and paused.
func (p *CampaignProcessor) ToggleCampaign(ctx context.Context, campaignID string) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	var previous string
	campaign, err := p.store.UpdateCampaignStatus(ctx, campaignID, func(current string) string {
		previous = current
		return NextToggleStatus(current)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to toggle campaign", err)
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "previous_status", Value: previous},
		observability.Field{Key: "new_status", Value: campaign.Status},
	)
	if previous == campaign.Status {
		p.logger.Info(ctx, "campaign toggle was a no-op")
		return campaign, nil
	}

	p.logger.Info(ctx, "campaign status toggled")
	p.publisher.Publish(ctx, ws.EventCampaignUpdated, campaign)
	return campaign, nil
}
