package observe

import (
	"sync"

	"nyxventure/pkg/types"
)

// Publisher receives model events. Implementations should be lightweight and
// non-blocking; Publish must not panic.
type Publisher interface {
	Publish(types.Event)
}

// Publishers fans an event out to every element in order.
type Publishers []Publisher

func (ps Publishers) Publish(ev types.Event) {
	for _, p := range ps {
		if p != nil {
			p.Publish(ev)
		}
	}
}

// Noop drops events.
type Noop struct{}

func (Noop) Publish(types.Event) {}

// MemoryPublisher stores events in-memory for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []types.Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(e types.Event) {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
}

func (p *MemoryPublisher) Events() []types.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]types.Event, len(p.events))
	copy(out, p.events)
	return out
}

// Reset drops the stored events.
func (p *MemoryPublisher) Reset() {
	p.mu.Lock()
	p.events = nil
	p.mu.Unlock()
}
