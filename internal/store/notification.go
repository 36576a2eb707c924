package store

import (
	"context"
	"sort"
	"time"
)

// InternalNotification is an entry in the console's own notification feed
type InternalNotification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateNotificationParams struct {
	Title       string
	Description string
	Type        string
	Priority    string
}

// ListNotifications returns the feed newest first.
func (s *Store) ListNotifications(ctx context.Context) ([]InternalNotification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]InternalNotification, len(s.notifications))
	for i, n := range s.notifications {
		out[len(out)-1-i] = n
	}
	// ties keep the later insertion first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) CreateNotification(ctx context.Context, params CreateNotificationParams) (InternalNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := InternalNotification{
		ID:          s.newID(),
		Title:       params.Title,
		Description: params.Description,
		Type:        params.Type,
		Priority:    params.Priority,
		CreatedAt:   s.now(),
	}
	if n.Type == "" {
		n.Type = NotificationTypeSystem
	}
	if n.Priority == "" {
		n.Priority = NotificationPriorityNormal
	}
	s.notifications = append(s.notifications, n)
	return n, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, id string) (InternalNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return s.notifications[i], nil
		}
	}
	return InternalNotification{}, ErrNotFound
}

// MarkAllNotificationsRead flags the whole feed read and returns how many changed.
func (s *Store) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed++
		}
	}
	return changed, nil
}
