package bootstrap

import (
	"context"
	"time"

	"wa-console/internal/api"
	"wa-console/internal/apierrors"
	"wa-console/internal/config"
	"wa-console/internal/observability"
	"wa-console/internal/ratelimit"
	"wa-console/internal/store"
	"wa-console/internal/workers"
	"wa-console/internal/workers/outbound"
	"wa-console/internal/ws"

	analyticsHandler "wa-console/internal/analytics/handler"
	analyticsProcessor "wa-console/internal/analytics/processor"
	campaignHandler "wa-console/internal/campaign/handler"
	campaignProcessor "wa-console/internal/campaign/processor"
	"wa-console/internal/clients/whatsapp"
	contactsHandler "wa-console/internal/contacts/handler"
	contactsProcessor "wa-console/internal/contacts/processor"
	inboxHandler "wa-console/internal/inbox/handler"
	inboxProcessor "wa-console/internal/inbox/processor"
	notificationsHandler "wa-console/internal/notifications/handler"
	notificationsProcessor "wa-console/internal/notifications/processor"
	ordersHandler "wa-console/internal/orders/handler"
	ordersProcessor "wa-console/internal/orders/processor"
	systemHandler "wa-console/internal/system/handler"
	systemProcessor "wa-console/internal/system/processor"
	teamHandler "wa-console/internal/team/handler"
	teamProcessor "wa-console/internal/team/processor"
	templatesHandler "wa-console/internal/templates/handler"
	templatesProcessor "wa-console/internal/templates/processor"
)

const outboundDrainTimeout = 10 * time.Second

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	Handlers api.Handlers

	// Live inbox events
	Hub *ws.Hub

	// Background workers
	OutboundPool workers.WorkerPool
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}
	apierrors.SetLogger(logger)

	// Initialize the in-memory store with mock data
	deps.Store = store.New(logger)
	deps.Store.Seed(ctx)

	// Initialize clients
	whatsappClient := whatsapp.NewClient(cfg.WhatsApp, logger)
	if !whatsappClient.TemplatesConfigured() {
		logger.Info(ctx, "whatsapp gateway not configured, serving cached templates")
	}

	// Initialize live event hub
	deps.Hub = ws.NewHub(logger)

	// Initialize outbound send pool, capped by the protection settings
	sendLimiter := ratelimit.New(deps.Store, logger)
	outboundProc := outbound.New(whatsappClient, sendLimiter, logger)
	deps.OutboundPool = workers.NewWorkerPool(workers.WorkerPoolConfig{
		NumWorkers:   cfg.Outbound.Workers,
		QueueSize:    cfg.Outbound.QueueSize,
		DrainTimeout: outboundDrainTimeout,
		JobTimeout:   cfg.WhatsApp.Timeout,
		OnResult:     publishSendFailures(deps.Hub),
	}, outboundProc, logger)

	// Initialize team processor and handler
	teamProc := teamProcessor.New(deps.Store, logger)
	deps.Handlers.Team = teamHandler.New(teamProc, logger)

	// Initialize template processor and handler
	templatesProc := templatesProcessor.New(deps.Store, whatsappClient, logger)
	deps.Handlers.Templates = templatesHandler.New(templatesProc, logger)

	// Initialize notification processor and handler
	notificationsProc := notificationsProcessor.New(deps.Store, deps.Hub, logger)
	deps.Handlers.Notifications = notificationsHandler.New(notificationsProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(deps.Store, deps.Hub, logger)
	deps.Handlers.Campaigns = campaignHandler.New(campaignProc, logger)

	// Initialize contact processor and handler
	contactsProc := contactsProcessor.New(deps.Store, deps.Hub, logger)
	deps.Handlers.Contacts = contactsHandler.New(contactsProc, logger)

	// Initialize inbox processor and handler
	inboxProc := inboxProcessor.New(deps.Store, deps.OutboundPool, deps.Hub, logger)
	deps.Handlers.Inbox = inboxHandler.New(inboxProc, logger)

	// Initialize order processor and handler
	ordersProc := ordersProcessor.New(deps.Store, logger)
	deps.Handlers.Orders = ordersHandler.New(ordersProc, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.New(deps.Store, logger)
	deps.Handlers.Analytics = analyticsHandler.New(analyticsProc, logger)

	// Initialize system processor and handler
	systemProc := systemProcessor.New(deps.Store, logger)
	deps.Handlers.System = systemHandler.New(systemProc, logger)

	return deps, nil
}

// Cleanup drains queued gateway sends and stops the pool
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.OutboundPool == nil {
		return
	}
	if err := d.OutboundPool.Drain(ctx); err != nil {
		d.Logger.Error(ctx, "outbound pool did not drain cleanly", err)
	}
}

// publishSendFailures tells inbox clients which recorded messages the gateway
// did not accept.
func publishSendFailures(hub *ws.Hub) workers.ResultCallback {
	return func(r workers.ProcessingResult) {
		if r.Error == nil {
			return
		}
		hub.Publish(context.Background(), ws.EventMessageFailed, map[string]string{
			"id":             r.Job.ID,
			"conversationId": r.Job.ConversationID,
			"error":          r.Error.Error(),
		})
	}
}
