package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wa-console/internal/observability"
)

// newTestStore returns an empty store with a deterministic clock and id sequence.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(observability.NewNopLogger())
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return s
}

func createTestContact(t *testing.T, s *Store, firstName, phone string) ContactCreation {
	t.Helper()
	res, err := s.CreateContactWithConversation(context.Background(), CreateContactParams{
		FirstName: firstName,
		Phone:     phone,
	})
	if err != nil {
		t.Fatalf("failed to create test contact: %v", err)
	}
	return res
}
