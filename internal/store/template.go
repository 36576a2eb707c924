package store

import (
	"context"
	"strings"
)

// Template is a message template as known to the console. The authoritative
// copy lives with the messaging provider; the store keeps the last good listing.
type Template struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Status     string              `json:"status"`
	Category   string              `json:"category"`
	Language   string              `json:"language"`
	Components []TemplateComponent `json:"components"`
}

type TemplateComponent struct {
	Type   string `json:"type"`
	Format string `json:"format,omitempty"`
	Text   string `json:"text,omitempty"`
}

// Body returns the text of the BODY component, or "" when there is none.
func (t Template) Body() string {
	for _, c := range t.Components {
		if strings.EqualFold(c.Type, TemplateComponentBody) {
			return c.Text
		}
	}
	return ""
}

func (s *Store) ListTemplates(ctx context.Context) ([]Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneTemplates(s.templates), nil
}

// ReplaceTemplates swaps the cached listing for a fresh one from the provider.
func (s *Store) ReplaceTemplates(ctx context.Context, templates []Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates = cloneTemplates(templates)
	return nil
}

func (s *Store) GetTemplateByID(ctx context.Context, id string) (Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.templates {
		if t.ID == id {
			return cloneTemplates([]Template{t})[0], nil
		}
	}
	return Template{}, ErrNotFound
}

func cloneTemplates(in []Template) []Template {
	out := make([]Template, len(in))
	for i, t := range in {
		out[i] = t
		out[i].Components = append([]TemplateComponent(nil), t.Components...)
	}
	return out
}
