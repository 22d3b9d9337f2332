package observe

import (
	"sync"

	"nyxventure/pkg/types"
)

const defaultSubscriberBuffer = 64

type subscriber struct {
	ch     chan types.Event
	filter *Filter
}

// Hub delivers events to live subscribers. A subscriber that does not keep up
// loses events instead of stalling the publisher.
type Hub struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]*subscriber
}

func NewHub() *Hub { return &Hub{subs: make(map[uint64]*subscriber)} }

// Subscribe registers a subscriber receiving events matching f. The returned
// function unsubscribes and closes the channel; it is safe to call twice.
func (h *Hub) Subscribe(buffer int, f *Filter) (<-chan types.Event, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	s := &subscriber{ch: make(chan types.Event, buffer), filter: f}
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = s
	h.mu.Unlock()
	streamSubscribers.Inc()

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			close(s.ch)
			h.mu.Unlock()
			streamSubscribers.Dec()
		})
	}
}

func (h *Hub) Publish(ev types.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.subs {
		if !s.filter.Match(ev) {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			streamDroppedTotal.Inc()
		}
	}
}

// Len returns the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
