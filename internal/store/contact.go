package store

import (
	"context"
	"strings"
	"time"
)

// Contact is an address-book entry keyed in practice by phone number
type Contact struct {
	ID         string            `json:"id"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Tags       []string          `json:"tags"`
	Lists      []string          `json:"lists"`
	Attributes map[string]string `json:"attributes"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// DisplayName is the contact's full name, or the phone number when unnamed.
func (c Contact) DisplayName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.Phone
	}
	return name
}

type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ContactList struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CreateContactParams struct {
	FirstName  string
	LastName   string
	Phone      string
	Email      string
	Tags       []string
	Lists      []string
	Attributes map[string]string
	Status     string
}

// UpdateContactParams lists the client-writable fields of a Contact. Phone is
// the conversation key and is not writable.
type UpdateContactParams struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Tags       *[]string
	Lists      *[]string
	Attributes *map[string]string
	Status     *string
}

type CreateTagParams struct {
	Name  string
	Color string
}

// ContactCreation is the result of CreateContactWithConversation.
type ContactCreation struct {
	Contact             Contact
	Conversation        Conversation
	ContactCreated      bool
	ConversationCreated bool
}

func (s *Store) ListContacts(ctx context.Context) ([]Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Contact, len(s.contacts))
	for i, c := range s.contacts {
		out[i] = c.clone()
	}
	return out, nil
}

func (s *Store) CountContacts(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.contacts), nil
}

func (s *Store) GetContactByID(ctx context.Context, id string) (Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.contactIndex(id)
	if i < 0 {
		return Contact{}, ErrNotFound
	}
	return s.contacts[i].clone(), nil
}

// CreateContactWithConversation adds a contact and, when no conversation
// exists for its phone number, opens one with an empty message list. Both
// writes happen under one lock.
//
// Phone is the contact's business key: a non-empty phone that already
// belongs to a contact returns that contact unchanged with ContactCreated
// false. Contacts without a phone are always added.
func (s *Store) CreateContactWithConversation(ctx context.Context, params CreateContactParams) (ContactCreation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	phone := strings.TrimSpace(params.Phone)

	var result ContactCreation
	if i := s.contactIndexByPhone(phone); i >= 0 {
		result.Contact = s.contacts[i].clone()
	} else {
		contact := Contact{
			ID:         s.newID(),
			FirstName:  params.FirstName,
			LastName:   params.LastName,
			Phone:      phone,
			Email:      params.Email,
			Tags:       cloneStrings(params.Tags),
			Lists:      cloneStrings(params.Lists),
			Attributes: cloneAttributes(params.Attributes),
			Status:     params.Status,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if contact.Status == "" {
			contact.Status = ContactStatusSubscribed
		}
		s.contacts = append(s.contacts, contact)
		result.Contact = contact.clone()
		result.ContactCreated = true
	}
	contact := result.Contact

	if i := s.conversationIndexByPhone(contact.Phone); i >= 0 {
		result.Conversation = s.conversations[i].clone()
		return result, nil
	}

	conversation := Conversation{
		ID:            s.newID(),
		ContactID:     contact.ID,
		ContactName:   contact.DisplayName(),
		ContactNumber: contact.Phone,
		LastMessageAt: now,
		Status:        ConversationStatusOpen,
		Tags:          []string{},
	}
	s.conversations = append(s.conversations, conversation)
	s.messages[conversation.ID] = []Message{}

	result.Conversation = conversation.clone()
	result.ConversationCreated = true
	return result, nil
}

func (s *Store) UpdateContact(ctx context.Context, id string, params UpdateContactParams) (Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.contactIndex(id)
	if i < 0 {
		return Contact{}, ErrNotFound
	}
	c := &s.contacts[i]
	if params.FirstName != nil {
		c.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		c.LastName = *params.LastName
	}
	if params.Email != nil {
		c.Email = *params.Email
	}
	if params.Tags != nil {
		c.Tags = cloneStrings(*params.Tags)
	}
	if params.Lists != nil {
		c.Lists = cloneStrings(*params.Lists)
	}
	if params.Attributes != nil {
		c.Attributes = cloneAttributes(*params.Attributes)
	}
	if params.Status != nil {
		c.Status = *params.Status
	}
	c.UpdatedAt = s.now()

	if params.FirstName != nil || params.LastName != nil {
		for j := range s.conversations {
			if s.conversations[j].ContactID == c.ID {
				s.conversations[j].ContactName = c.DisplayName()
			}
		}
	}
	return c.clone(), nil
}

func (s *Store) ListTags(ctx context.Context) ([]Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out, nil
}

func (s *Store) CreateTag(ctx context.Context, params CreateTagParams) (Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag := Tag{ID: s.newID(), Name: params.Name, Color: params.Color}
	if tag.Color == "" {
		tag.Color = "#64748b"
	}
	s.tags = append(s.tags, tag)
	return tag, nil
}

// ListContactLists returns every list with Count recomputed from membership.
func (s *Store) ListContactLists(ctx context.Context) ([]ContactList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.lists))
	for _, c := range s.contacts {
		for _, listID := range c.Lists {
			counts[listID]++
		}
	}
	out := make([]ContactList, len(s.lists))
	for i, l := range s.lists {
		l.Count = counts[l.ID]
		out[i] = l
	}
	return out, nil
}

func (s *Store) contactIndexByPhone(phone string) int {
	if phone == "" {
		return -1
	}
	for i := range s.contacts {
		if s.contacts[i].Phone == phone {
			return i
		}
	}
	return -1
}

func (s *Store) contactIndex(id string) int {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

func (c Contact) clone() Contact {
	c.Tags = cloneStrings(c.Tags)
	c.Lists = cloneStrings(c.Lists)
	c.Attributes = cloneAttributes(c.Attributes)
	return c
}

func cloneAttributes(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
