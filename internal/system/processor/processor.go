package processor

import (
	"context"
	"math/rand"

	"wa-console/internal/observability"
	"wa-console/internal/store"
)

// SystemStore defines the store operations required by SystemProcessor
type SystemStore interface {
	UpdateQueueStats(ctx context.Context, fn func(store.QueueStats) store.QueueStats) (store.QueueStats, error)
	GetProtectionSettings(ctx context.Context) (store.ProtectionSettings, error)
	UpdateProtectionSettings(ctx context.Context, params store.UpdateProtectionSettingsParams) (store.ProtectionSettings, error)
}

type SystemProcessor struct {
	store  SystemStore
	logger *observability.Logger
	jitter func(n int) int
}

func New(store SystemStore, logger *observability.Logger) SystemProcessor {
	return SystemProcessor{
		store:  store,
		logger: logger,
		jitter: func(n int) int { return rand.Intn(2*n+1) - n },
	}
}

// QueueStats returns the dashboard queue snapshot. The numbers are synthetic:
// each read nudges the previous snapshot by a small random amount.
func (p *SystemProcessor) QueueStats(ctx context.Context) (store.QueueStats, error) {
	stats, err := p.store.UpdateQueueStats(ctx, func(prev store.QueueStats) store.QueueStats {
		prev.Queued = nonNegative(prev.Queued + p.jitter(10))
		prev.Processing = nonNegative(prev.Processing + p.jitter(2))
		prev.SentPerMinute = nonNegative(prev.SentPerMinute + p.jitter(5))
		prev.FailedLastHour = nonNegative(prev.FailedLastHour + p.jitter(1))
		return prev
	})
	if err != nil {
		p.logger.Error(ctx, "failed to update queue stats", err)
		return store.QueueStats{}, err
	}
	return stats, nil
}

func (p *SystemProcessor) GetProtectionSettings(ctx context.Context) (store.ProtectionSettings, error) {
	settings, err := p.store.GetProtectionSettings(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get protection settings", err)
		return store.ProtectionSettings{}, err
	}
	return settings, nil
}

func (p *SystemProcessor) UpdateProtectionSettings(ctx context.Context, params store.UpdateProtectionSettingsParams) (store.ProtectionSettings, error) {
	settings, err := p.store.UpdateProtectionSettings(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to update protection settings", err)
		return store.ProtectionSettings{}, err
	}

	p.logger.Info(ctx, "protection settings updated")
	return settings, nil
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
