package audit

import (
	"context"
	"sync"
)

// Publisher delivers audit events to a sink. Implementations may block on
// the underlying transport; callers that need best-effort semantics wrap
// Emit in a log-and-discard helper rather than relying on the publisher.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// MemoryPublisher collects events in memory for tests and local runs.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a snapshot of everything emitted so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
