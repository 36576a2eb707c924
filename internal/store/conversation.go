package store

import (
	"context"
	"time"
)

// Conversation is the inbox thread with one phone number
type Conversation struct {
	ID              string    `json:"id"`
	ContactID       string    `json:"contactId"`
	ContactName     string    `json:"contactName"`
	ContactNumber   string    `json:"contactNumber"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageAt   time.Time `json:"lastMessageAt"`
	UnreadCount     int       `json:"unreadCount"`
	Status          string    `json:"status"`
	IsLocked        bool      `json:"isLocked"`
	LockedByAgentID string    `json:"lockedByAgentId,omitempty"`
	AssignedAgentID string    `json:"assignedAgentId,omitempty"`
	Tags            []string  `json:"tags"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Direction      string    `json:"direction"`
	Type           string    `json:"type"`
	Content        string    `json:"content"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

type CreateMessageParams struct {
	Direction string
	Type      string
	Content   string
	Status    string
}

// MessageAppend is the result of AppendMessage: the stored message and the
// conversation with its refreshed preview.
type MessageAppend struct {
	Message      Message
	Conversation Conversation
}

func (s *Store) ListConversations(ctx context.Context) ([]Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Conversation, len(s.conversations))
	for i, c := range s.conversations {
		out[i] = c.clone()
	}
	return out, nil
}

func (s *Store) GetConversationByID(ctx context.Context, id string) (Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.conversationIndex(id)
	if i < 0 {
		return Conversation{}, ErrNotFound
	}
	return s.conversations[i].clone(), nil
}

// ListMessages returns the messages of a conversation oldest first.
func (s *Store) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.conversationIndex(conversationID) < 0 {
		return nil, ErrNotFound
	}
	msgs := s.messages[conversationID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// AppendMessage records a message and updates the conversation preview.
// Inbound messages also bump the unread counter.
func (s *Store) AppendMessage(ctx context.Context, conversationID string, params CreateMessageParams) (MessageAppend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.conversationIndex(conversationID)
	if i < 0 {
		return MessageAppend{}, ErrNotFound
	}

	msg := Message{
		ID:             s.newID(),
		ConversationID: conversationID,
		Direction:      params.Direction,
		Type:           params.Type,
		Content:        params.Content,
		Status:         params.Status,
		Timestamp:      s.now(),
	}
	if msg.Direction == "" {
		msg.Direction = MessageDirectionOutbound
	}
	if msg.Type == "" {
		msg.Type = MessageTypeText
	}
	if msg.Status == "" {
		msg.Status = MessageStatusSent
		if msg.Direction == MessageDirectionInbound {
			msg.Status = MessageStatusReceived
		}
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)

	conv := &s.conversations[i]
	conv.LastMessage = msg.Content
	conv.LastMessageAt = msg.Timestamp
	if msg.Direction == MessageDirectionInbound {
		conv.UnreadCount++
	}
	return MessageAppend{Message: msg, Conversation: conv.clone()}, nil
}

// LockConversation claims a conversation for an agent. Locking implies assignment.
func (s *Store) LockConversation(ctx context.Context, id, agentID string) (Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.conversationIndex(id)
	if i < 0 {
		return Conversation{}, ErrNotFound
	}
	conv := &s.conversations[i]
	conv.IsLocked = true
	conv.LockedByAgentID = agentID
	conv.AssignedAgentID = agentID
	return conv.clone(), nil
}

// UnlockConversation releases the lock and keeps the assignment.
func (s *Store) UnlockConversation(ctx context.Context, id string) (Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.conversationIndex(id)
	if i < 0 {
		return Conversation{}, ErrNotFound
	}
	conv := &s.conversations[i]
	conv.IsLocked = false
	conv.LockedByAgentID = ""
	return conv.clone(), nil
}

// BulkAssignConversations assigns agentID to every conversation in ids.
// Unknown ids are skipped. Returns the conversations that were assigned.
func (s *Store) BulkAssignConversations(ctx context.Context, ids []string, agentID string) ([]Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	updated := make([]Conversation, 0, len(ids))
	for i := range s.conversations {
		if _, ok := wanted[s.conversations[i].ID]; !ok {
			continue
		}
		s.conversations[i].AssignedAgentID = agentID
		updated = append(updated, s.conversations[i].clone())
	}
	return updated, nil
}

func (s *Store) conversationIndex(id string) int {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) conversationIndexByPhone(phone string) int {
	for i := range s.conversations {
		if s.conversations[i].ContactNumber == phone {
			return i
		}
	}
	return -1
}

func (c Conversation) clone() Conversation {
	c.Tags = cloneStrings(c.Tags)
	return c
}
