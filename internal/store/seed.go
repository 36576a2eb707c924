package store

import (
	"context"
	"time"
)

// Seed loads the demo data set the console ships with. It is meant for a
// fresh store and appends to whatever is already there.
func (s *Store) Seed(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	s.users = append(s.users,
		User{ID: "agent-1", Name: "Sara Al-Harbi", Email: "sara@example.com", Role: UserRoleAdmin, Status: UserStatusActive, CreatedAt: ago(90 * 24 * time.Hour)},
		User{ID: "agent-2", Name: "Omar Khalid", Email: "omar@example.com", Role: UserRoleSupervisor, Status: UserStatusActive, CreatedAt: ago(60 * 24 * time.Hour)},
		User{ID: "agent-3", Name: "Lina Haddad", Email: "lina@example.com", Role: UserRoleAgent, Status: UserStatusActive, CreatedAt: ago(30 * 24 * time.Hour)},
	)

	s.tags = append(s.tags,
		Tag{ID: "tag-vip", Name: "VIP", Color: "#f59e0b"},
		Tag{ID: "tag-new", Name: "New", Color: "#10b981"},
		Tag{ID: "tag-support", Name: "Support", Color: "#3b82f6"},
	)

	s.lists = append(s.lists,
		ContactList{ID: "list-customers", Name: "Customers"},
		ContactList{ID: "list-leads", Name: "Leads"},
	)

	s.templates = append(s.templates,
		Template{
			ID: "tpl1", Name: "welcome_message", Status: TemplateStatusApproved, Category: "MARKETING", Language: "en",
			Components: []TemplateComponent{
				{Type: TemplateComponentHeader, Format: "TEXT", Text: "Welcome!"},
				{Type: TemplateComponentBody, Text: "Hello {{1}}, thanks for joining us. Reply to this message any time."},
				{Type: TemplateComponentFooter, Text: "Reply STOP to unsubscribe"},
			},
		},
		Template{
			ID: "tpl2", Name: "order_confirmation", Status: TemplateStatusApproved, Category: "UTILITY", Language: "en",
			Components: []TemplateComponent{
				{Type: TemplateComponentBody, Text: "Your order {{1}} is confirmed. Total: {{2}}."},
			},
		},
		Template{
			ID: "tpl3", Name: "ramadan_offer", Status: TemplateStatusPending, Category: "MARKETING", Language: "ar",
			Components: []TemplateComponent{
				{Type: TemplateComponentBody, Text: "رمضان كريم! خصم ٢٠٪ على جميع الطلبات هذا الأسبوع."},
			},
		},
	)

	contacts := []Contact{
		{ID: s.newID(), FirstName: "Ahmed", LastName: "Nasser", Phone: "+966500000001", Email: "ahmed@example.com", Tags: []string{"tag-vip"}, Lists: []string{"list-customers"}, Attributes: map[string]string{"city": "Riyadh"}, Status: ContactStatusSubscribed, CreatedAt: ago(20 * 24 * time.Hour)},
		{ID: s.newID(), FirstName: "Mona", LastName: "Saleh", Phone: "+966500000002", Email: "mona@example.com", Tags: []string{"tag-new"}, Lists: []string{"list-leads"}, Attributes: map[string]string{}, Status: ContactStatusSubscribed, CreatedAt: ago(5 * 24 * time.Hour)},
		{ID: s.newID(), FirstName: "John", LastName: "Carter", Phone: "+447700900123", Email: "", Tags: []string{}, Lists: []string{"list-customers"}, Attributes: map[string]string{"language": "en"}, Status: ContactStatusUnsubscribed, CreatedAt: ago(45 * 24 * time.Hour)},
	}
	for i := range contacts {
		contacts[i].UpdatedAt = contacts[i].CreatedAt
	}
	s.contacts = append(s.contacts, contacts...)

	thread := func(c Contact, assigned string, msgs []Message) {
		conv := Conversation{
			ID:              s.newID(),
			ContactID:       c.ID,
			ContactName:     c.DisplayName(),
			ContactNumber:   c.Phone,
			Status:          ConversationStatusOpen,
			AssignedAgentID: assigned,
			Tags:            cloneStrings(c.Tags),
			LastMessageAt:   c.CreatedAt,
		}
		for i := range msgs {
			msgs[i].ID = s.newID()
			msgs[i].ConversationID = conv.ID
			conv.LastMessage = msgs[i].Content
			conv.LastMessageAt = msgs[i].Timestamp
			if msgs[i].Direction == MessageDirectionInbound && msgs[i].Status == MessageStatusReceived {
				conv.UnreadCount++
			}
		}
		s.conversations = append(s.conversations, conv)
		s.messages[conv.ID] = msgs
	}

	thread(contacts[0], "agent-3", []Message{
		{Direction: MessageDirectionInbound, Type: MessageTypeText, Content: "Hi, is my order shipped?", Status: MessageStatusRead, Timestamp: ago(26 * time.Hour)},
		{Direction: MessageDirectionOutbound, Type: MessageTypeText, Content: "Yes, it left the warehouse this morning.", Status: MessageStatusRead, Timestamp: ago(25 * time.Hour)},
		{Direction: MessageDirectionInbound, Type: MessageTypeText, Content: "Great, thanks!", Status: MessageStatusReceived, Timestamp: ago(2 * time.Hour)},
	})
	thread(contacts[1], "", []Message{
		{Direction: MessageDirectionOutbound, Type: MessageTypeTemplate, Content: "Hello Mona, thanks for joining us. Reply to this message any time.", Status: MessageStatusDelivered, Timestamp: ago(3 * 24 * time.Hour)},
		{Direction: MessageDirectionInbound, Type: MessageTypeText, Content: "Do you deliver to Jeddah?", Status: MessageStatusReceived, Timestamp: ago(30 * time.Minute)},
	})
	thread(contacts[2], "agent-2", []Message{
		{Direction: MessageDirectionOutbound, Type: MessageTypeText, Content: "Your refund has been processed.", Status: MessageStatusFailed, Timestamp: ago(4 * 24 * time.Hour)},
	})

	s.campaigns = append(s.campaigns,
		Campaign{
			ID: s.newID(), Title: "Welcome series", Type: CampaignTypeBroadcast, Status: CampaignStatusRunning,
			TemplateID: "tpl1", TemplateName: "welcome_message",
			Audience:     CampaignAudience{ListIDs: []string{"list-leads"}, TagIDs: []string{}},
			ThrottleRate: 60, RetryFailed: true,
			Stats:     CampaignStats{Total: 1000, Sent: 640, Delivered: 610, Read: 420, Failed: 12},
			CreatedAt: ago(7 * 24 * time.Hour), UpdatedAt: ago(24 * time.Hour),
		},
		Campaign{
			ID: s.newID(), Title: "Order updates", Type: CampaignTypeTransactional, Status: CampaignStatusDraft,
			TemplateID: "tpl2", TemplateName: "order_confirmation",
			Audience:  CampaignAudience{ListIDs: []string{"list-customers"}, TagIDs: []string{}},
			CreatedAt: ago(2 * 24 * time.Hour), UpdatedAt: ago(2 * 24 * time.Hour),
		},
	)

	s.orders = append(s.orders, Order{
		ID: s.newID(), CustomerName: contacts[0].DisplayName(), CustomerPhone: contacts[0].Phone,
		Items:          []OrderItem{{Name: "Arabic coffee 500g", Quantity: 2, Price: 45, Total: 90}, {Name: "Dates box", Quantity: 1, Price: 60, Total: 60}},
		Subtotal:       150,
		Tax:            22.5,
		Total:          172.5,
		Status:         OrderStatusPendingPayment,
		ApprovalStatus: OrderApprovalPending,
		History:        []OrderHistory{{Action: OrderActionCreated, By: "agent-3", At: ago(26 * time.Hour)}},
		CreatedAt:      ago(26 * time.Hour),
	})

	s.notifications = append(s.notifications,
		InternalNotification{ID: s.newID(), Title: "Template approved", Description: "welcome_message was approved by Meta.", Type: NotificationTypeSystem, Priority: NotificationPriorityNormal, Read: true, CreatedAt: ago(6 * 24 * time.Hour)},
		InternalNotification{ID: s.newID(), Title: "Campaign running", Description: "Welcome series started sending.", Type: NotificationTypeCampaign, Priority: NotificationPriorityNormal, CreatedAt: ago(24 * time.Hour)},
		InternalNotification{ID: s.newID(), Title: "New order awaiting approval", Description: "Ahmed Nasser placed an order.", Type: NotificationTypeOrder, Priority: NotificationPriorityHigh, CreatedAt: ago(26 * time.Hour)},
	)

	s.queueStats = QueueStats{Queued: 120, Processing: 8, SentPerMinute: 45, FailedLastHour: 3, UpdatedAt: now}
}
