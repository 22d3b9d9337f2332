package observe

import (
	"sync"

	"github.com/oklog/ulid/v2"

	"nyxventure/pkg/types"
)

const defaultJournalSize = 1024

type journalEntry struct {
	id ulid.ULID
	ev types.Event
}

// Journal keeps the most recent events in a ring. Events must be published in
// id order, as a session does.
type Journal struct {
	mu    sync.Mutex
	ring  []journalEntry
	start int
	n     int
}

// NewJournal returns a journal holding up to size events. size <= 0 selects
// the default.
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = defaultJournalSize
	}
	return &Journal{ring: make([]journalEntry, size)}
}

// Publish appends ev. Events whose id does not parse are dropped.
func (j *Journal) Publish(ev types.Event) {
	id, err := ulid.ParseStrict(ev.ID)
	if err != nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	i := (j.start + j.n) % len(j.ring)
	j.ring[i] = journalEntry{id: id, ev: ev}
	if j.n < len(j.ring) {
		j.n++
		return
	}
	j.start = (j.start + 1) % len(j.ring)
}

// Len returns the number of retained events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.n
}

// Since returns retained events with an id greater than after, oldest first,
// at most limit of them (limit <= 0 means all). An empty after reads from the
// oldest retained event.
func (j *Journal) Since(after string, limit int) ([]types.Event, error) {
	cursor, err := ParseCursor(after)
	if err != nil {
		return nil, err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	out := []types.Event{}
	for k := 0; k < j.n; k++ {
		e := j.ring[(j.start+k)%len(j.ring)]
		if after != "" && e.id.Compare(cursor) <= 0 {
			continue
		}
		out = append(out, e.ev)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ParseCursor parses an event id used as a paging cursor. An empty cursor
// yields the zero id.
func ParseCursor(after string) (ulid.ULID, error) {
	if after == "" {
		return ulid.ULID{}, nil
	}
	id, err := ulid.ParseStrict(after)
	if err != nil {
		return ulid.ULID{}, invalidCursorError{cursor: after, err: err}
	}
	return id, nil
}
