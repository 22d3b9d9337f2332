package archive

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"nyxventure/internal/observe"
	"nyxventure/internal/session"
	"nyxventure/pkg/types"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "events.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("", zerolog.Nop()); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestArchivesSessionEvents(t *testing.T) {
	store := openTemp(t)
	sess := session.New(session.Config{Publishers: []observe.Publisher{store}})
	ops := []types.Op{
		{Op: "create", Target: "game", Slot: "Chapters", As: "c1"},
		{Op: "set", Target: "c1", Property: "Name", Value: "Caves"},
	}
	if _, err := sess.ApplyAll(ops); err != nil {
		t.Fatalf("apply: %v", err)
	}
	journal, _ := sess.Events("", 0)
	archived, err := store.Since("", 0)
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if len(archived) != len(journal) {
		t.Fatalf("archived %d events, journal has %d", len(archived), len(journal))
	}
	last := archived[len(archived)-1]
	want := journal[len(journal)-1]
	if last.ID != want.ID || last.Alias != "c1" || len(last.Path) != 2 || last.Path[1] != want.Path[1] || last.Depth != 1 {
		t.Fatalf("archived %+v, want %+v", last, want)
	}
	if n, _ := store.Count(); n != len(journal) {
		t.Fatalf("count=%d", n)
	}
}

func TestSincePagingAndCursor(t *testing.T) {
	store := openTemp(t)
	ids := observe.NewIDSource()
	var evs []types.Event
	for i := 0; i < 3; i++ {
		id, at := ids.Next()
		ev := types.Event{ID: id.String(), Channel: types.ChannelLocal, Kind: "game", Node: "n", Property: "Title", Time: at.UnixMilli()}
		evs = append(evs, ev)
		store.Publish(ev)
	}
	store.Publish(evs[0])
	if n, _ := store.Count(); n != 3 {
		t.Fatalf("duplicate id stored twice: count=%d", n)
	}
	page, err := store.Since(evs[0].ID, 1)
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if len(page) != 1 || page[0].ID != evs[1].ID || page[0].Path != nil {
		t.Fatalf("unexpected page: %+v", page)
	}
	lower, err := store.Since(strings.ToLower(evs[0].ID), 0)
	if err != nil || len(lower) != 2 || lower[0].ID != evs[1].ID {
		t.Fatalf("lower-case cursor: evs=%+v err=%v", lower, err)
	}
	j := observe.NewJournal(0)
	for _, ev := range evs {
		j.Publish(ev)
	}
	fromJournal, _ := j.Since(strings.ToLower(evs[0].ID), 0)
	if len(fromJournal) != len(lower) {
		t.Fatalf("journal returned %d events, archive %d", len(fromJournal), len(lower))
	}
	if _, err := store.Since("nope", 0); !observe.IsInvalidCursor(err) {
		t.Fatalf("expected invalid cursor, got %v", err)
	}
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.Publish(types.Event{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Channel: types.ChannelBubble, Path: []string{"a", "b"}, Depth: 1})
	_ = s.Close()

	s, err = Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	evs, err := s.Since("", 0)
	if err != nil || len(evs) != 1 || evs[0].Path[1] != "b" {
		t.Fatalf("evs=%+v err=%v", evs, err)
	}
}
