package infrastructure

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"weatherdash.app/internal/ports"
)

// DefaultNotificationCapacity bounds how many undrained notifications are kept
const DefaultNotificationCapacity = 50

// MemoryNotificationStore queues notifications until the page drains them.
// When full, the oldest pending notification is dropped.
type MemoryNotificationStore struct {
	mu       sync.Mutex
	pending  []ports.Notification
	capacity int
	now      func() time.Time
}

// NewMemoryNotificationStore creates a store holding at most capacity
// notifications; non-positive capacity uses DefaultNotificationCapacity
func NewMemoryNotificationStore(capacity int) *MemoryNotificationStore {
	if capacity <= 0 {
		capacity = DefaultNotificationCapacity
	}
	return &MemoryNotificationStore{
		capacity: capacity,
		now:      time.Now,
	}
}

// Notify queues a notification
func (s *MemoryNotificationStore) Notify(title, description string, variant ports.NotificationVariant) {
	if variant == "" {
		variant = ports.NotificationDefault
	}
	notification := ports.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) >= s.capacity {
		s.pending = append(s.pending[:0], s.pending[len(s.pending)-s.capacity+1:]...)
	}
	s.pending = append(s.pending, notification)
}

// Drain returns pending notifications oldest first and empties the queue
func (s *MemoryNotificationStore) Drain() []ports.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	drained := make([]ports.Notification, len(s.pending))
	copy(drained, s.pending)
	s.pending = s.pending[:0]
	return drained
}

var (
	_ ports.Notifier         = (*MemoryNotificationStore)(nil)
	_ ports.NotificationFeed = (*MemoryNotificationStore)(nil)
)
