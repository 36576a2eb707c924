package store

import (
	"context"
	"time"
)

// QueueStats is the outbound queue snapshot shown on the dashboard
type QueueStats struct {
	Queued         int       `json:"queued"`
	Processing     int       `json:"processing"`
	SentPerMinute  int       `json:"sentPerMinute"`
	FailedLastHour int       `json:"failedLastHour"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProtectionSettings are the account-protection knobs. Only
// MaxMessagesPerMinute is enforced, on gateway delivery.
type ProtectionSettings struct {
	MaxMessagesPerMinute   int    `json:"maxMessagesPerMinute"`
	WarmupEnabled          bool   `json:"warmupEnabled"`
	BlockOnHighFailureRate bool   `json:"blockOnHighFailureRate"`
	FailureRateThreshold   int    `json:"failureRateThreshold"`
	QuietHoursEnabled      bool   `json:"quietHoursEnabled"`
	QuietHoursStart        string `json:"quietHoursStart"`
	QuietHoursEnd          string `json:"quietHoursEnd"`
}

type UpdateProtectionSettingsParams struct {
	MaxMessagesPerMinute   *int
	WarmupEnabled          *bool
	BlockOnHighFailureRate *bool
	FailureRateThreshold   *int
	QuietHoursEnabled      *bool
	QuietHoursStart        *string
	QuietHoursEnd          *string
}

// UpdateQueueStats applies fn to the current snapshot under the store lock.
func (s *Store) UpdateQueueStats(ctx context.Context, fn func(QueueStats) QueueStats) (QueueStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queueStats = fn(s.queueStats)
	s.queueStats.UpdatedAt = s.now()
	return s.queueStats, nil
}

func (s *Store) GetProtectionSettings(ctx context.Context) (ProtectionSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.protection, nil
}

func (s *Store) UpdateProtectionSettings(ctx context.Context, params UpdateProtectionSettingsParams) (ProtectionSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.protection
	if params.MaxMessagesPerMinute != nil {
		p.MaxMessagesPerMinute = *params.MaxMessagesPerMinute
	}
	if params.WarmupEnabled != nil {
		p.WarmupEnabled = *params.WarmupEnabled
	}
	if params.BlockOnHighFailureRate != nil {
		p.BlockOnHighFailureRate = *params.BlockOnHighFailureRate
	}
	if params.FailureRateThreshold != nil {
		p.FailureRateThreshold = *params.FailureRateThreshold
	}
	if params.QuietHoursEnabled != nil {
		p.QuietHoursEnabled = *params.QuietHoursEnabled
	}
	if params.QuietHoursStart != nil {
		p.QuietHoursStart = *params.QuietHoursStart
	}
	if params.QuietHoursEnd != nil {
		p.QuietHoursEnd = *params.QuietHoursEnd
	}
	return *p, nil
}
