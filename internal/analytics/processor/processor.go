package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"wa-console/internal/observability"
	"wa-console/internal/store"

	"github.com/shopspring/decimal"
)

// AnalyticsStore defines the store operations required by AnalyticsProcessor
type AnalyticsStore interface {
	GetAnalyticsCounts(ctx context.Context) (store.AnalyticsCounts, error)
	CountMessagesByDay(ctx context.Context, since time.Time) (map[string]store.DailyMessageCount, error)
}

const (
	DefaultTimelineDays = 7
	MaxTimelineDays     = 90
)

var ErrInvalidDays = errors.New("invalid timeline length")

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// SummaryResponse is the dashboard headline block. Rates are percentages of
// outbound messages, rounded to one decimal.
type SummaryResponse struct {
	TotalContacts       int     `json:"totalContacts"`
	SubscribedContacts  int     `json:"subscribedContacts"`
	TotalConversations  int     `json:"totalConversations"`
	OpenConversations   int     `json:"openConversations"`
	UnreadConversations int     `json:"unreadConversations"`
	MessagesSent        int     `json:"messagesSent"`
	MessagesReceived    int     `json:"messagesReceived"`
	MessagesDelivered   int     `json:"messagesDelivered"`
	MessagesRead        int     `json:"messagesRead"`
	MessagesFailed      int     `json:"messagesFailed"`
	DeliveryRate        float64 `json:"deliveryRate"`
	ReadRate            float64 `json:"readRate"`
	FailureRate         float64 `json:"failureRate"`
	ActiveCampaigns     int     `json:"activeCampaigns"`
	PendingOrders       int     `json:"pendingOrders"`
}

type TimelineResponse struct {
	Days   int                       `json:"days"`
	Points []store.DailyMessageCount `json:"points"`
}

func (p *AnalyticsProcessor) GetSummary(ctx context.Context) (SummaryResponse, error) {
	counts, err := p.store.GetAnalyticsCounts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get analytics counts", err)
		return SummaryResponse{}, err
	}

	return SummaryResponse{
		TotalContacts:       counts.TotalContacts,
		SubscribedContacts:  counts.SubscribedContacts,
		TotalConversations:  counts.TotalConversations,
		OpenConversations:   counts.OpenConversations,
		UnreadConversations: counts.UnreadConversations,
		MessagesSent:        counts.MessagesSent,
		MessagesReceived:    counts.MessagesReceived,
		MessagesDelivered:   counts.MessagesDelivered,
		MessagesRead:        counts.MessagesRead,
		MessagesFailed:      counts.MessagesFailed,
		DeliveryRate:        percentage(counts.MessagesDelivered, counts.MessagesSent),
		ReadRate:            percentage(counts.MessagesRead, counts.MessagesSent),
		FailureRate:         percentage(counts.MessagesFailed, counts.MessagesSent),
		ActiveCampaigns:     counts.ActiveCampaigns,
		PendingOrders:       counts.PendingOrders,
	}, nil
}

// GetTimeline returns one point per UTC day for the last days days, oldest
// first and ending today. Days without traffic are present with zero counts.
func (p *AnalyticsProcessor) GetTimeline(ctx context.Context, days int) (TimelineResponse, error) {
	if days <= 0 || days > MaxTimelineDays {
		return TimelineResponse{}, ErrInvalidDays
	}

	now := p.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, -(days - 1))

	counts, err := p.store.CountMessagesByDay(ctx, since)
	if err != nil {
		p.logger.Error(ctx, "failed to count messages by day", err)
		return TimelineResponse{}, err
	}

	points := make([]store.DailyMessageCount, 0, days)
	for day := since; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		point, ok := counts[key]
		if !ok {
			point = store.DailyMessageCount{Date: key}
		}
		points = append(points, point)
	}
	return TimelineResponse{Days: days, Points: points}, nil
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(whole))).
		Round(1).
		InexactFloat64()
}
