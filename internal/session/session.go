package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nyxventure/internal/node"
	"nyxventure/internal/observe"
	"nyxventure/internal/story"
	"nyxventure/pkg/types"
)

// GameAlias is the alias the game is indexed under.
const GameAlias = "game"

// Session serializes edits on one game. All methods are safe for concurrent
// use.
type Session struct {
	mu      sync.Mutex
	game    *story.Game
	byID    map[uuid.UUID]story.Entity
	aliases map[string]story.Entity
	aliasOf map[uuid.UUID]string

	ids     *observe.IDSource
	journal *observe.Journal
	hub     *observe.Hub
	pub     observe.Publishers
	log     zerolog.Logger
	buffer  int

	// events fired by the op being applied
	pending []types.Event
}

// New builds a session around a fresh game.
func New(cfg Config) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		byID:    make(map[uuid.UUID]story.Entity),
		aliases: make(map[string]story.Entity),
		aliasOf: make(map[uuid.UUID]string),
		ids:     observe.NewIDSource(),
		journal: observe.NewJournal(cfg.JournalSize),
		hub:     observe.NewHub(),
		log:     zerolog.Nop(),
		buffer:  cfg.StreamBuffer,
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	}
	s.pub = observe.Publishers{s.journal, s.hub, observe.Metrics{}, observe.NewLogger(s.log)}
	s.pub = append(s.pub, cfg.Publishers...)

	// The configured title is the starting state: it is set before anything
	// subscribes and leaves the game clean.
	s.game = story.NewGame()
	if cfg.Title != "" {
		s.game.SetTitle(cfg.Title)
		node.ClearAll(s.game)
	}
	s.index(s.game)
	_ = s.setAlias(s.game, GameAlias)
	s.game.OnBubble(s.onBubble)
	return s
}

// Ready reports whether the session accepts edits.
func (s *Session) Ready() bool { return true }

// Clear resets the change flags of the whole game. No event fires.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	node.ClearAll(s.game)
}

// Events returns journaled events after the given id, oldest first.
func (s *Session) Events(after string, limit int) ([]types.Event, error) {
	return s.journal.Since(after, limit)
}

// Subscribe registers a live subscriber for events matching the filter
// expression. buffer <= 0 selects the configured stream buffer.
func (s *Session) Subscribe(buffer int, filter string) (<-chan types.Event, func(), error) {
	f, err := observe.CompileFilter(filter)
	if err != nil {
		return nil, nil, err
	}
	if buffer <= 0 {
		buffer = s.buffer
	}
	ch, cancel := s.hub.Subscribe(buffer, f)
	return ch, cancel, nil
}

// Lookup resolves an alias or id to an indexed entity.
func (s *Session) Lookup(ref string) (story.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolve(ref)
}

// Alias returns the alias of the entity with id, if any.
func (s *Session) Alias(id uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aliasOf[id]
}

func (s *Session) resolve(ref string) (story.Entity, error) {
	if e, ok := s.aliases[ref]; ok {
		return e, nil
	}
	if id, err := uuid.Parse(ref); err == nil {
		if e, ok := s.byID[id]; ok {
			return e, nil
		}
	}
	return nil, nodeNotFoundError{ref: ref}
}

// index records e and subscribes to its local channel. The game's bubble
// channel alone carries bubble events.
func (s *Session) index(e story.Entity) {
	if _, ok := s.byID[e.ID()]; ok {
		return
	}
	s.byID[e.ID()] = e
	e.OnLocalChange(s.onLocal)
}

func (s *Session) setAlias(e story.Entity, alias string) error {
	if alias == "" {
		return nil
	}
	if cur, ok := s.aliases[alias]; ok && cur != e {
		return aliasTakenError{alias: alias}
	}
	if old, ok := s.aliasOf[e.ID()]; ok {
		delete(s.aliases, old)
	}
	s.aliases[alias] = e
	s.aliasOf[e.ID()] = alias
	return nil
}

func (s *Session) onLocal(src node.Node, property string) {
	s.emit(types.Event{
		Channel:  types.ChannelLocal,
		Kind:     kindOf(src),
		Node:     src.ID().String(),
		Alias:    s.aliasOf[src.ID()],
		Property: property,
	})
}

func (s *Session) onBubble(ev node.BubbleEvent) {
	path := ev.Path()
	ids := make([]string, len(path))
	for i, n := range path {
		ids[i] = n.ID().String()
	}
	origin := ev.Origin()
	s.emit(types.Event{
		Channel:  types.ChannelBubble,
		Kind:     kindOf(origin),
		Node:     origin.ID().String(),
		Alias:    s.aliasOf[origin.ID()],
		Property: ev.Property(),
		Path:     ids,
		Depth:    ev.Depth(),
	})
}

func (s *Session) emit(ev types.Event) {
	id, at := s.ids.Next()
	ev.ID = id.String()
	ev.Time = at.UnixMilli()
	s.pending = append(s.pending, ev)
	s.pub.Publish(ev)
}

func kindOf(n node.Node) string {
	if e, ok := n.(story.Entity); ok {
		return string(e.Kind())
	}
	return ""
}
