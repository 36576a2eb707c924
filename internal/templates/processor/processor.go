package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"wa-console/internal/clients/whatsapp"
	"wa-console/internal/observability"
	"wa-console/internal/store"
)

// TemplateStore defines the store operations required by TemplateProcessor
type TemplateStore interface {
	ListTemplates(ctx context.Context) ([]store.Template, error)
	ReplaceTemplates(ctx context.Context, templates []store.Template) error
}

// TemplateGateway is the live source of templates
type TemplateGateway interface {
	TemplatesConfigured() bool
	GetTemplates(ctx context.Context) ([]whatsapp.Template, error)
}

var errGatewayNotConfigured = errors.New("template gateway not configured")

type TemplateProcessor struct {
	store   TemplateStore
	gateway TemplateGateway
	logger  *observability.Logger
}

func New(store TemplateStore, gateway TemplateGateway, logger *observability.Logger) TemplateProcessor {
	return TemplateProcessor{
		store:   store,
		gateway: gateway,
		logger:  logger,
	}
}

// ListTemplates prefers the provider's live listing and refreshes the local
// cache with it. Any gateway problem falls back to the cache and is only logged.
func (p *TemplateProcessor) ListTemplates(ctx context.Context) ([]store.Template, error) {
	live, err := p.fetchLive(ctx)
	if err == nil {
		if err := p.store.ReplaceTemplates(ctx, live); err != nil {
			p.logger.Error(ctx, "failed to refresh template cache", err)
		}
		return live, nil
	}

	observability.TemplateFallbacksTotal.Inc()
	if errors.Is(err, errGatewayNotConfigured) {
		p.logger.Debug(ctx, "template gateway not configured, serving cached templates")
	} else {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}),
			"live template fetch failed, serving cached templates")
	}

	cached, err := p.store.ListTemplates(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list cached templates", err)
		return []store.Template{}, nil
	}
	return cached, nil
}

func (p *TemplateProcessor) fetchLive(ctx context.Context) ([]store.Template, error) {
	if p.gateway == nil || !p.gateway.TemplatesConfigured() {
		return nil, errGatewayNotConfigured
	}

	remote, err := p.gateway.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}

	templates := make([]store.Template, 0, len(remote))
	for _, t := range remote {
		components := make([]store.TemplateComponent, 0, len(t.Components))
		for _, c := range t.Components {
			components = append(components, store.TemplateComponent{Type: c.Type, Format: c.Format, Text: c.Text})
		}
		templates = append(templates, store.Template{
			ID:         t.ID,
			Name:       t.Name,
			Status:     t.Status,
			Category:   t.Category,
			Language:   t.Language,
			Components: components,
		})
	}
	return templates, nil
}
