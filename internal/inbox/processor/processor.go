package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"wa-console/internal/observability"
	"wa-console/internal/store"
	"wa-console/internal/workers"
	"wa-console/internal/ws"
)

// InboxStore defines the store operations required by InboxProcessor
type InboxStore interface {
	ListConversations(ctx context.Context) ([]store.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]store.Message, error)
	AppendMessage(ctx context.Context, conversationID string, params store.CreateMessageParams) (store.MessageAppend, error)
	LockConversation(ctx context.Context, id, agentID string) (store.Conversation, error)
	UnlockConversation(ctx context.Context, id string) (store.Conversation, error)
	BulkAssignConversations(ctx context.Context, ids []string, agentID string) ([]store.Conversation, error)
}

// Dispatcher hands gateway sends to the background without waiting on them
type Dispatcher interface {
	TrySubmit(job workers.OutboundJob) error
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{})
}

var ErrConversationNotFound = fmt.Errorf("conversation %w", store.ErrNotFound)

const defaultTemplateLanguage = "en"

// SendMessageParams is an agent reply or a simulated inbound message
type SendMessageParams struct {
	Direction    string
	Type         string
	Content      string
	TemplateName string
	LanguageCode string
}

type InboxProcessor struct {
	store      InboxStore
	dispatcher Dispatcher
	publisher  EventPublisher
	logger     *observability.Logger
}

func New(store InboxStore, dispatcher Dispatcher, publisher EventPublisher, logger *observability.Logger) InboxProcessor {
	return InboxProcessor{
		store:      store,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
	}
}

func (p *InboxProcessor) ListConversations(ctx context.Context) ([]store.Conversation, error) {
	conversations, err := p.store.ListConversations(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list conversations", err)
		return nil, err
	}
	return conversations, nil
}

func (p *InboxProcessor) ListMessages(ctx context.Context, conversationID string) ([]store.Message, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: conversationID})

	messages, err := p.store.ListMessages(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to list messages", err)
		return nil, err
	}
	return messages, nil
}

// SendMessage records the message and refreshes the conversation preview
// before returning. Outbound messages are then queued for the gateway; the
// outcome of that send never changes what was recorded.
func (p *InboxProcessor) SendMessage(ctx context.Context, conversationID string, params SendMessageParams) (store.Message, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: conversationID})

	appended, err := p.store.AppendMessage(ctx, conversationID, store.CreateMessageParams{
		Direction: params.Direction,
		Type:      params.Type,
		Content:   params.Content,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Message{}, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to record message", err)
		return store.Message{}, err
	}

	msg := appended.Message
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "message_id", Value: msg.ID},
		observability.Field{Key: "direction", Value: msg.Direction},
	)

	if msg.Direction == store.MessageDirectionOutbound {
		p.dispatch(ctx, appended, params)
	}

	p.publisher.Publish(ctx, ws.EventMessageCreated, msg)
	p.publisher.Publish(ctx, ws.EventConversationUpdated, appended.Conversation)
	return msg, nil
}

func (p *InboxProcessor) dispatch(ctx context.Context, appended store.MessageAppend, params SendMessageParams) {
	if p.dispatcher == nil {
		return
	}

	job := workers.OutboundJob{
		ID:             appended.Message.ID,
		ConversationID: appended.Conversation.ID,
		To:             appended.Conversation.ContactNumber,
		Body:           appended.Message.Content,
	}
	if appended.Message.Type == store.MessageTypeTemplate && params.TemplateName != "" {
		job.TemplateName = params.TemplateName
		job.LanguageCode = params.LanguageCode
		if job.LanguageCode == "" {
			job.LanguageCode = defaultTemplateLanguage
		}
	}

	if err := p.dispatcher.TrySubmit(job); err != nil {
		p.logger.Error(ctx, "failed to queue gateway send", err)
	}
}

func (p *InboxProcessor) LockConversation(ctx context.Context, conversationID, agentID string) (store.Conversation, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "conversation_id", Value: conversationID},
		observability.Field{Key: "agent_id", Value: agentID},
	)

	conv, err := p.store.LockConversation(ctx, conversationID, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Conversation{}, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to lock conversation", err)
		return store.Conversation{}, err
	}

	p.publisher.Publish(ctx, ws.EventConversationUpdated, conv)
	return conv, nil
}

func (p *InboxProcessor) UnlockConversation(ctx context.Context, conversationID string) (store.Conversation, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: conversationID})

	conv, err := p.store.UnlockConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Conversation{}, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to unlock conversation", err)
		return store.Conversation{}, err
	}

	p.publisher.Publish(ctx, ws.EventConversationUpdated, conv)
	return conv, nil
}

func (p *InboxProcessor) BulkAssign(ctx context.Context, conversationIDs []string, agentID string) ([]store.Conversation, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "agent_id", Value: agentID},
		observability.Field{Key: "requested", Value: len(conversationIDs)},
	)

	updated, err := p.store.BulkAssignConversations(ctx, conversationIDs, agentID)
	if err != nil {
		p.logger.Error(ctx, "failed to bulk assign conversations", err)
		return nil, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "assigned", Value: len(updated)}), "conversations assigned")
	for _, conv := range updated {
		p.publisher.Publish(ctx, ws.EventConversationUpdated, conv)
	}
	return updated, nil
}
