package store

import (
	"errors"
	"sync"
	"time"

	"wa-console/internal/observability"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// Store is the process-wide in-memory state of the console. All collections
// share one lock; nothing survives a restart.
type Store struct {
	mu     sync.RWMutex
	logger *observability.Logger

	users         []User
	contacts      []Contact
	conversations []Conversation
	messages      map[string][]Message
	campaigns     []Campaign
	orders        []Order
	templates     []Template
	tags          []Tag
	lists         []ContactList
	notifications []InternalNotification
	queueStats    QueueStats
	protection    ProtectionSettings

	now   func() time.Time
	newID func() string
}

// New returns an empty store. Call Seed to load the demo data set.
func New(logger *observability.Logger) *Store {
	return &Store{
		logger:   logger,
		messages: make(map[string][]Message),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
		protection: ProtectionSettings{
			MaxMessagesPerMinute:   60,
			WarmupEnabled:          true,
			BlockOnHighFailureRate: true,
			FailureRateThreshold:   10,
			QuietHoursStart:        "22:00",
			QuietHoursEnd:          "08:00",
		},
	}
}
