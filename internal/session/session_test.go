package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"nyxventure/internal/node"
	"nyxventure/internal/observe"
	"nyxventure/internal/story"
	"nyxventure/pkg/types"
)

func mustApply(t *testing.T, s *Session, op types.Op) types.OpResult {
	t.Helper()
	res, err := s.Apply(op)
	if err != nil {
		t.Fatalf("apply %+v: %v", op, err)
	}
	return res
}

func channels(evs []types.Event) string {
	parts := make([]string, len(evs))
	for i, e := range evs {
		parts[i] = e.Channel + ":" + e.Kind + "." + e.Property
	}
	return strings.Join(parts, ",")
}

func TestNewIndexesGame(t *testing.T) {
	s := New(Config{Title: "Nyx"})
	e, err := s.Lookup(GameAlias)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	g, ok := e.(*story.Game)
	if !ok || g.Title() != "Nyx" {
		t.Fatalf("game=%v", e)
	}
	if g.ObjectChanged() || g.ModelChanged() {
		t.Fatalf("titled game starts dirty")
	}
	if evs, _ := s.Events("", 0); len(evs) != 0 {
		t.Fatalf("construction journaled %d events", len(evs))
	}
	byID, err := s.Lookup(g.ID().String())
	if err != nil || byID != e {
		t.Fatalf("lookup by id: %v", err)
	}
	if _, err := s.Lookup("missing"); !IsNodeNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !s.Ready() {
		t.Fatalf("not ready")
	}
}

func TestSetFiresLocalAndBubble(t *testing.T) {
	s := New(Config{})
	res := mustApply(t, s, types.Op{Op: "set", Target: "game", Property: "Title", Value: "Dawn"})
	if !res.Changed || channels(res.Events) != "local:game.Title,bubble:game.Title" {
		t.Fatalf("events=%s", channels(res.Events))
	}
	if res.Events[1].Depth != 0 || len(res.Events[1].Path) != 1 {
		t.Fatalf("bubble=%+v", res.Events[1])
	}
	again := mustApply(t, s, types.Op{Op: "set", Target: "game", Property: "Title", Value: "Dawn"})
	if again.Changed || len(again.Events) != 0 {
		t.Fatalf("idempotent set fired %s", channels(again.Events))
	}
}

func TestCreateAndBubblePath(t *testing.T) {
	s := New(Config{})
	ch := mustApply(t, s, types.Op{Op: "create", Target: "game", Slot: "StartChapter", As: "intro"})
	if ch.Node == "" || ch.Alias != "intro" {
		t.Fatalf("create result=%+v", ch)
	}
	if channels(ch.Events) != "local:game.StartChapter" {
		t.Fatalf("create events=%s", channels(ch.Events))
	}
	mustApply(t, s, types.Op{Op: "create", Target: "intro", Slot: "Links", As: "door"})
	res := mustApply(t, s, types.Op{Op: "set", Target: "door", Property: "Text", Value: "Open"})
	if channels(res.Events) != "local:link.Text,bubble:link.Text" {
		t.Fatalf("events=%s", channels(res.Events))
	}
	b := res.Events[1]
	game, _ := s.Lookup("game")
	if b.Depth != 2 || len(b.Path) != 3 || b.Path[0] != game.ID().String() || b.Path[1] != ch.Node || b.Alias != "door" {
		t.Fatalf("bubble=%+v", b)
	}
}

func TestBareAddDoesNotBubble(t *testing.T) {
	s := New(Config{})
	mustApply(t, s, types.Op{Op: "new", Kind: "feature", As: "luck"})
	res := mustApply(t, s, types.Op{Op: "add", Target: "game", Slot: "Features", Ref: "luck"})
	if channels(res.Events) != "local:game.Features" {
		t.Fatalf("add events=%s", channels(res.Events))
	}
	res = mustApply(t, s, types.Op{Op: "set", Target: "luck", Property: "Name", Value: "Luck"})
	if channels(res.Events) != "local:feature.Name" {
		t.Fatalf("bare member events=%s", channels(res.Events))
	}

	mustApply(t, s, types.Op{Op: "remove", Target: "game", Slot: "Features", Ref: "luck"})
	mustApply(t, s, types.Op{Op: "own", Target: "game", Slot: "Features", Ref: "luck"})
	res = mustApply(t, s, types.Op{Op: "set", Target: "luck", Property: "MaxValue", Value: 10})
	if channels(res.Events) != "local:feature.MaxValue,bubble:feature.MaxValue" {
		t.Fatalf("owned member events=%s", channels(res.Events))
	}
}

func TestStartChapterSharedWithChapters(t *testing.T) {
	s := New(Config{})
	mustApply(t, s, types.Op{Op: "create", Target: "game", Slot: "Chapters", As: "c1"})
	mustApply(t, s, types.Op{Op: "add", Target: "game", Slot: "StartChapter", Ref: "c1"})
	res := mustApply(t, s, types.Op{Op: "set", Target: "c1", Property: "Name", Value: "One"})
	bubbles := 0
	for _, e := range res.Events {
		if e.Channel == types.ChannelBubble {
			bubbles++
		}
	}
	if bubbles != 1 {
		t.Fatalf("chapter in two slots bubbled %d times", bubbles)
	}
	if _, err := s.Apply(types.Op{Op: "own", Target: "game", Slot: "StartChapter", Ref: "c1"}); err != nil {
		t.Fatalf("owning an already owned chapter again: %v", err)
	}
}

func TestScoreAndReferences(t *testing.T) {
	s := New(Config{})
	mustApply(t, s, types.Op{Op: "create", Target: "game", Slot: "Features", As: "str"})
	mustApply(t, s, types.Op{Op: "create", Target: "game", Slot: "Skills", As: "sword"})
	mustApply(t, s, types.Op{Op: "create", Target: "game", Slot: "CharacterTypes", As: "knight"})
	res := mustApply(t, s, types.Op{Op: "score", Target: "knight", Ref: "str", Value: 7})
	if channels(res.Events) != "local:character_type.BaseFeaturePoints" {
		t.Fatalf("score events=%s", channels(res.Events))
	}
	mustApply(t, s, types.Op{Op: "score", Target: "knight", Ref: "sword", Value: float64(2)})
	ct, _ := s.Lookup("knight")
	st, _ := s.Lookup("str")
	if ct.(*story.CharacterType).BaseFeaturePoint(st.(*story.Feature)) != 7 {
		t.Fatalf("score not stored")
	}
	mustApply(t, s, types.Op{Op: "unscore", Target: "knight", Ref: "sword"})
	if _, err := s.Apply(types.Op{Op: "score", Target: "str", Ref: "str", Value: 1}); !IsInvalidOp(err) {
		t.Fatalf("expected invalid op, got %v", err)
	}
	tree := s.Tree()
	var knight types.TreeNode
	for _, slot := range tree.Slots {
		if slot.Name == "CharacterTypes" {
			knight = slot.Nodes[0]
		}
	}
	if len(knight.References) != 1 || knight.References[0].Alias != "str" || knight.References[0].Value != 7 {
		t.Fatalf("references=%+v", knight.References)
	}
}

func TestLinkPlaceAndUse(t *testing.T) {
	s := New(Config{})
	for _, op := range []types.Op{
		{Op: "create", Target: "game", Slot: "Chapters", As: "hall"},
		{Op: "create", Target: "game", Slot: "Chapters", As: "vault"},
		{Op: "create", Target: "game", Slot: "Artifacts", As: "key"},
		{Op: "create", Target: "hall", Slot: "Links", As: "gate"},
		{Op: "place", Target: "hall", Ref: "key"},
		{Op: "link", Target: "gate", Property: "target", Ref: "vault"},
		{Op: "link", Target: "gate", Property: "artifact", Ref: "key"},
		{Op: "set", Target: "gate", Property: "ConsumesArtifact", Value: true},
	} {
		mustApply(t, s, op)
	}
	res := mustApply(t, s, types.Op{Op: "use", Target: "gate"})
	if res.Alias != "vault" {
		t.Fatalf("use reached %+v", res)
	}
	if channels(res.Events) != "local:artifact.Exhausted,bubble:artifact.Exhausted" {
		t.Fatalf("use events=%s", channels(res.Events))
	}
	if _, err := s.Apply(types.Op{Op: "use", Target: "gate"}); !IsInvalidOp(err) {
		t.Fatalf("expected unusable link, got %v", err)
	}
	if _, err := s.Apply(types.Op{Op: "place", Target: "hall", Ref: "vault"}); !IsInvalidOp(err) {
		t.Fatalf("placed a chapter as artifact: %v", err)
	}
	if _, err := s.Apply(types.Op{Op: "link", Target: "gate", Property: "target", Ref: "key"}); !IsInvalidOp(err) {
		t.Fatalf("linked to an artifact: %v", err)
	}
	mustApply(t, s, types.Op{Op: "take", Target: "hall", Ref: "key"})
	mustApply(t, s, types.Op{Op: "link", Target: "gate", Property: "target"})
	gate, _ := s.Lookup("gate")
	if gate.(*story.Link).Target() != nil {
		t.Fatalf("target not unset")
	}
}

func TestApplyErrors(t *testing.T) {
	s := New(Config{})
	cases := []struct {
		op    types.Op
		check func(error) bool
	}{
		{types.Op{Op: "explode"}, IsUnknownOp},
		{types.Op{Op: "set", Target: "nobody", Property: "Name"}, IsNodeNotFound},
		{types.Op{Op: "set", Target: "game"}, IsInvalidOp},
		{types.Op{Op: "set", Target: "game", Property: "Weight", Value: 1}, story.IsUnknownProperty},
		{types.Op{Op: "create", Target: "game", Slot: "Villains"}, story.IsUnknownSlot},
		{types.Op{Op: "new", Kind: "dragon"}, story.IsUnknownKind},
		{types.Op{Op: "new", Kind: "skill", As: "game"}, IsAliasTaken},
	}
	for _, c := range cases {
		_, err := s.Apply(c.op)
		if !c.check(err) {
			t.Fatalf("%+v: unexpected error %v", c.op, err)
		}
	}

	mustApply(t, s, types.Op{Op: "create", Target: "game", Slot: "Features", As: "f"})
	mustApply(t, s, types.Op{Op: "new", Kind: "game", As: "other"})
	_, err := s.Apply(types.Op{Op: "own", Target: "other", Slot: "Features", Ref: "f"})
	if !errors.Is(err, node.ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
	if _, err := s.Apply(types.Op{Op: "create", Target: "f", Slot: "Links"}); !IsInvalidOp(err) {
		t.Fatalf("feature accepted a slot op: %v", err)
	}
}

func TestApplyAllStopsAtFirstError(t *testing.T) {
	s := New(Config{})
	results, err := s.ApplyAll([]types.Op{
		{Op: "set", Target: "game", Property: "Title", Value: "A"},
		{Op: "set", Target: "ghost", Property: "Title", Value: "B"},
		{Op: "set", Target: "game", Property: "Author", Value: "C"},
	})
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Index != 1 || !IsNodeNotFound(opErr.Err) {
		t.Fatalf("err=%v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results=%d", len(results))
	}
	g, _ := s.Lookup("game")
	if g.(*story.Game).Author() != "" {
		t.Fatalf("ops after the failure ran")
	}
}

func TestClearAndTree(t *testing.T) {
	s := New(Config{})
	mustApply(t, s, types.Op{Op: "create", Target: "game", Slot: "StartChapter", As: "intro"})
	mustApply(t, s, types.Op{Op: "create", Target: "intro", Slot: "Links", As: "door"})
	mustApply(t, s, types.Op{Op: "set", Target: "door", Property: "Text", Value: "x"})
	tree := s.Tree()
	if tree.Alias != "game" || !tree.ModelChanged || tree.Kind != "game" {
		t.Fatalf("root=%+v", tree)
	}
	start := tree.Slots[0]
	if start.Name != "StartChapter" || len(start.Nodes) != 1 || !start.Nodes[0].Owned {
		t.Fatalf("start slot=%+v", start)
	}
	door := start.Nodes[0].Slots[0].Nodes[0]
	if door.Alias != "door" || !door.ObjectChanged || door.Label != "x" {
		t.Fatalf("door=%+v", door)
	}

	s.Clear()
	tree = s.Tree()
	if tree.ModelChanged || tree.Slots[0].Nodes[0].Slots[0].Nodes[0].ObjectChanged {
		t.Fatalf("flags survived clear")
	}
	res := mustApply(t, s, types.Op{Op: "clear"})
	if res.Changed {
		t.Fatalf("clear fired events")
	}
	sub, err := s.Subtree("intro")
	if err != nil || sub.Alias != "intro" || !sub.Owned {
		t.Fatalf("subtree=%+v err=%v", sub, err)
	}
}

func TestJournalAndSubscribers(t *testing.T) {
	mem := observe.NewMemoryPublisher()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s := New(Config{JournalSize: 8, Publishers: []observe.Publisher{mem}, Logger: &logger})

	ch, cancel, err := s.Subscribe(8, `channel == "bubble"`)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()
	if _, _, err := s.Subscribe(0, "depth +"); !observe.IsInvalidFilter(err) {
		t.Fatalf("expected invalid filter, got %v", err)
	}

	first := mustApply(t, s, types.Op{Op: "set", Target: "game", Property: "Title", Value: "T"})
	mustApply(t, s, types.Op{Op: "set", Target: "game", Property: "Genre", Value: "G"})

	if got := <-ch; got.Property != "Title" || got.Channel != types.ChannelBubble {
		t.Fatalf("stream got %+v", got)
	}
	if got := <-ch; got.Property != "Genre" {
		t.Fatalf("stream got %+v", got)
	}
	if len(mem.Events()) != 4 {
		t.Fatalf("publisher saw %d events", len(mem.Events()))
	}
	evs, err := s.Events(first.Events[1].ID, 0)
	if err != nil || len(evs) != 2 || evs[0].Property != "Genre" {
		t.Fatalf("events after=%+v err=%v", evs, err)
	}
	if !strings.Contains(buf.String(), `"message":"op applied"`) || !strings.Contains(buf.String(), `"message":"model event"`) {
		t.Fatalf("missing log lines: %s", buf.String())
	}
}
