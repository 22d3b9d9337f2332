package node

import "testing"

type leaf struct {
	Base
	name  string
	count int
	flag  bool
}

func newLeaf() *leaf {
	l := &leaf{}
	l.Init(l)
	return l
}

func (l *leaf) SetName(v string) bool { return SetProperty(l, &l.name, v, "Name") }
func (l *leaf) SetCount(v int) bool   { return SetProperty(l, &l.count, v, "Count") }
func (l *leaf) SetFlag(v bool) bool   { return SetProperty(l, &l.flag, v, "Flag") }

type box struct {
	Base
	label  string
	one    *Ref[*leaf]
	items  *List[*leaf]
	boxes  *List[*box]
	scores *Table[*leaf, int]
	tags   *Set[*leaf]
}

func newBox() *box {
	b := &box{}
	b.Init(b)
	b.one = NewRef[*leaf](b, "One")
	b.items = NewList[*leaf](b, "Items")
	b.boxes = NewList[*box](b, "Boxes")
	b.scores = NewTable[*leaf, int](b, "Scores")
	b.tags = NewSet[*leaf](b, "Tags")
	return b
}

func (b *box) SetLabel(v string) bool { return SetProperty(b, &b.label, v, "Label") }

type localCall struct {
	source   Node
	property string
}

// recorder collects events from one node's two channels.
type recorder struct {
	local   []localCall
	bubbles []BubbleEvent
}

func record(n Node) *recorder {
	r := &recorder{}
	n.OnLocalChange(func(source Node, property string) {
		r.local = append(r.local, localCall{source: source, property: property})
	})
	n.OnBubble(func(ev BubbleEvent) { r.bubbles = append(r.bubbles, ev) })
	return r
}

func (r *recorder) reset() {
	r.local = nil
	r.bubbles = nil
}

func assertPath(t *testing.T, ev BubbleEvent, want ...Node) {
	t.Helper()
	got := ev.Path()
	if len(got) != len(want) {
		t.Fatalf("path len=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path[%d]=%v want %v", i, got[i].ID(), want[i].ID())
		}
	}
}
