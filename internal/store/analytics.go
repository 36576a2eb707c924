package store

import (
	"context"
	"time"
)

// AnalyticsCounts is a point-in-time tally across the console's collections
type AnalyticsCounts struct {
	TotalContacts       int
	SubscribedContacts  int
	TotalConversations  int
	OpenConversations   int
	UnreadConversations int
	MessagesSent        int
	MessagesReceived    int
	MessagesDelivered   int
	MessagesRead        int
	MessagesFailed      int
	ActiveCampaigns     int
	PendingOrders       int
}

// DailyMessageCount tallies messages for one UTC day
type DailyMessageCount struct {
	Date      string `json:"date"`
	Sent      int    `json:"sent"`
	Received  int    `json:"received"`
	Delivered int    `json:"delivered"`
	Read      int    `json:"read"`
	Failed    int    `json:"failed"`
}

const dayLayout = "2006-01-02"

func (s *Store) GetAnalyticsCounts(ctx context.Context) (AnalyticsCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts AnalyticsCounts
	counts.TotalContacts = len(s.contacts)
	for _, c := range s.contacts {
		if c.Status == ContactStatusSubscribed {
			counts.SubscribedContacts++
		}
	}

	counts.TotalConversations = len(s.conversations)
	for _, c := range s.conversations {
		if c.Status == ConversationStatusOpen {
			counts.OpenConversations++
		}
		if c.UnreadCount > 0 {
			counts.UnreadConversations++
		}
	}

	for _, msgs := range s.messages {
		for _, m := range msgs {
			if m.Direction == MessageDirectionInbound {
				counts.MessagesReceived++
				continue
			}
			counts.MessagesSent++
			switch m.Status {
			case MessageStatusDelivered:
				counts.MessagesDelivered++
			case MessageStatusRead:
				counts.MessagesDelivered++
				counts.MessagesRead++
			case MessageStatusFailed:
				counts.MessagesFailed++
			}
		}
	}

	for _, c := range s.campaigns {
		if c.Status == CampaignStatusRunning {
			counts.ActiveCampaigns++
		}
	}
	for _, o := range s.orders {
		if o.ApprovalStatus == OrderApprovalPending {
			counts.PendingOrders++
		}
	}
	return counts, nil
}

// CountMessagesByDay returns per-day tallies for messages at or after since,
// keyed by UTC date. Days without messages are absent.
func (s *Store) CountMessagesByDay(ctx context.Context, since time.Time) (map[string]DailyMessageCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := make(map[string]DailyMessageCount)
	for _, msgs := range s.messages {
		for _, m := range msgs {
			if m.Timestamp.Before(since) {
				continue
			}
			key := m.Timestamp.UTC().Format(dayLayout)
			day := days[key]
			day.Date = key
			if m.Direction == MessageDirectionInbound {
				day.Received++
			} else {
				day.Sent++
				switch m.Status {
				case MessageStatusDelivered:
					day.Delivered++
				case MessageStatusRead:
					day.Delivered++
					day.Read++
				case MessageStatusFailed:
					day.Failed++
				}
			}
			days[key] = day
		}
	}
	return days, nil
}
