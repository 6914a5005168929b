// Package memory provides in-memory storage of emitted events.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

// Ensure interface compliance
var _ ports.EventSink = (*EventStore)(nil)

// DefaultCapacity bounds the events a store keeps.
const DefaultCapacity = 1000

// EventStore retains the most recent events in memory. Useful for testing
// and for summarizing a run after it finished.
type EventStore struct {
	events   []execution.Event
	capacity int
	mu       sync.RWMutex
}

// NewEventStore creates a store keeping at most capacity events, dropping
// the oldest first. A non-positive capacity means DefaultCapacity.
func NewEventStore(capacity int) *EventStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &EventStore{capacity: capacity}
}

// Emit implements ports.EventSink.
func (s *EventStore) Emit(_ context.Context, e execution.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Events are stored by value; payloads are shared with the caller and
	// must not be modified afterwards.
	s.events = append(s.events, e)
	if over := len(s.events) - s.capacity; over > 0 {
		s.events = append(s.events[:0:0], s.events[over:]...)
	}
	return nil
}

// FindByInvocation returns the events of one invocation in page order.
func (s *EventStore) FindByInvocation(_ context.Context, id values.InvocationID) []execution.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []execution.Event
	for _, e := range s.events {
		if e.InvocationID == id {
			matches = append(matches, e)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Page < matches[j].Page
	})
	return matches
}

// FindByOperation returns recent events of an operation, newest first.
func (s *EventStore) FindByOperation(_ context.Context, operation string, limit int) []execution.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []execution.Event
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].Operation == operation {
			matches = append(matches, s.events[i])
		}
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches
}

// FindBetween returns events emitted within [start, end], oldest first.
func (s *EventStore) FindBetween(_ context.Context, start, end time.Time) []execution.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []execution.Event
	for _, e := range s.events {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Len returns the number of stored events.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Tee fans each event out to several sinks in order. The first error stops
// the fan-out.
type Tee []ports.EventSink

// Emit implements ports.EventSink.
func (t Tee) Emit(ctx context.Context, e execution.Event) error {
	for _, sink := range t {
		if err := sink.Emit(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
