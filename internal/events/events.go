// Package events publishes order lifecycle events.
package events

import (
	"context"
	"strings"
	"sync"

	"github.com/dukerupert/foodmania/internal/domain"
)

// DefaultSubjectPrefix namespaces every subject this service publishes.
const DefaultSubjectPrefix = "foodmania"

// Publisher publishes order events. Publishing happens after the database
// commit and is best effort: callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

// Subject returns the subject an event type is published on, e.g.
// "foodmania.order.created".
func Subject(prefix, eventType string) string {
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" {
		return eventType
	}
	return prefix + "." + eventType
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, domain.OrderEvent) error { return nil }

// MemoryPublisher records events in memory. Used in tests and when no
// broker is configured in development.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent

	// Err, when set, is returned from every Publish call.
	Err error
}

var _ Publisher = (*MemoryPublisher)(nil)

// Publish implements Publisher.
func (m *MemoryPublisher) Publish(_ context.Context, event domain.OrderEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.events = append(m.events, event)
	return nil
}

// Events returns a copy of the recorded events.
func (m *MemoryPublisher) Events() []domain.OrderEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.OrderEvent, len(m.events))
	copy(out, m.events)
	return out
}
