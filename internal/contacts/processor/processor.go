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

// ContactStore defines the store operations required by ContactProcessor
type ContactStore interface {
	ListContacts(ctx context.Context) ([]store.Contact, error)
	CountContacts(ctx context.Context) (int, error)
	CreateContactWithConversation(ctx context.Context, params store.CreateContactParams) (store.ContactCreation, error)
	UpdateContact(ctx context.Context, id string, params store.UpdateContactParams) (store.Contact, error)
	ListContactLists(ctx context.Context) ([]store.ContactList, error)
	ListTags(ctx context.Context) ([]store.Tag, error)
	CreateTag(ctx context.Context, params store.CreateTagParams) (store.Tag, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{})
}

var ErrContactNotFound = fmt.Errorf("contact %w", store.ErrNotFound)

type ContactProcessor struct {
	store     ContactStore
	publisher EventPublisher
	logger    *observability.Logger
}

func New(store ContactStore, publisher EventPublisher, logger *observability.Logger) ContactProcessor {
	return ContactProcessor{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

func (p *ContactProcessor) ListContacts(ctx context.Context) ([]store.Contact, error) {
	contacts, err := p.store.ListContacts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list contacts", err)
		return nil, err
	}
	return contacts, nil
}

func (p *ContactProcessor) CountContacts(ctx context.Context) (int, error) {
	count, err := p.store.CountContacts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count contacts", err)
		return 0, err
	}
	return count, nil
}

// CreateContact adds a contact and opens its conversation unless one already
// exists for the phone number. A phone that already has a contact yields that
// contact with ContactCreated false and publishes nothing.
func (p *ContactProcessor) CreateContact(ctx context.Context, params store.CreateContactParams) (store.ContactCreation, error) {
	created, err := p.store.CreateContactWithConversation(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create contact", err)
		return store.ContactCreation{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "contact_id", Value: created.Contact.ID},
		observability.Field{Key: "conversation_id", Value: created.Conversation.ID},
		observability.Field{Key: "conversation_created", Value: created.ConversationCreated},
	)
	if !created.ContactCreated {
		p.logger.Info(ctx, "contact already exists for phone")
		return created, nil
	}
	p.logger.Info(ctx, "contact created")

	p.publisher.Publish(ctx, ws.EventContactCreated, created.Contact)
	if created.ConversationCreated {
		p.publisher.Publish(ctx, ws.EventConversationUpdated, created.Conversation)
	}
	return created, nil
}

func (p *ContactProcessor) UpdateContact(ctx context.Context, contactID string, params store.UpdateContactParams) (store.Contact, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "contact_id", Value: contactID})

	contact, err := p.store.UpdateContact(ctx, contactID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Contact{}, ErrContactNotFound
		}
		p.logger.Error(ctx, "failed to update contact", err)
		return store.Contact{}, err
	}
	return contact, nil
}

func (p *ContactProcessor) ListContactLists(ctx context.Context) ([]store.ContactList, error) {
	lists, err := p.store.ListContactLists(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list contact lists", err)
		return nil, err
	}
	return lists, nil
}

func (p *ContactProcessor) ListTags(ctx context.Context) ([]store.Tag, error) {
	tags, err := p.store.ListTags(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list tags", err)
		return nil, err
	}
	return tags, nil
}

func (p *ContactProcessor) CreateTag(ctx context.Context, params store.CreateTagParams) (store.Tag, error) {
	tag, err := p.store.CreateTag(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create tag", err)
		return store.Tag{}, err
	}
	return tag, nil
}
