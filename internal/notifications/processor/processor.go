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

// NotificationStore defines the store operations required by NotificationProcessor
type NotificationStore interface {
	ListNotifications(ctx context.Context) ([]store.InternalNotification, error)
	CreateNotification(ctx context.Context, params store.CreateNotificationParams) (store.InternalNotification, error)
	MarkNotificationRead(ctx context.Context, id string) (store.InternalNotification, error)
	MarkAllNotificationsRead(ctx context.Context) (int, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{})
}

// AllNotifications is the id that addresses the whole feed when marking read.
const AllNotifications = "all"

var ErrNotificationNotFound = fmt.Errorf("notification %w", store.ErrNotFound)

type NotificationProcessor struct {
	store     NotificationStore
	publisher EventPublisher
	logger    *observability.Logger
}

func New(store NotificationStore, publisher EventPublisher, logger *observability.Logger) NotificationProcessor {
	return NotificationProcessor{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NotificationProcessor) ListNotifications(ctx context.Context) ([]store.InternalNotification, error) {
	notifications, err := p.store.ListNotifications(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list notifications", err)
		return nil, err
	}
	return notifications, nil
}

func (p *NotificationProcessor) CreateNotification(ctx context.Context, params store.CreateNotificationParams) (store.InternalNotification, error) {
	n, err := p.store.CreateNotification(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create notification", err)
		return store.InternalNotification{}, err
	}

	p.publisher.Publish(ctx, ws.EventNotificationCreated, n)
	return n, nil
}

// MarkRead flags one notification read, or the whole feed for AllNotifications.
// It returns how many notifications changed state for "all", else 1.
func (p *NotificationProcessor) MarkRead(ctx context.Context, id string) (int, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "notification_id", Value: id})

	if id == AllNotifications {
		changed, err := p.store.MarkAllNotificationsRead(ctx)
		if err != nil {
			p.logger.Error(ctx, "failed to mark all notifications read", err)
			return 0, err
		}
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "changed", Value: changed}), "notifications marked read")
		return changed, nil
	}

	if _, err := p.store.MarkNotificationRead(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrNotificationNotFound
		}
		p.logger.Error(ctx, "failed to mark notification read", err)
		return 0, err
	}
	return 1, nil
}
