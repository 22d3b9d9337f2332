package node

import "github.com/google/uuid"

// Node is implemented by every entity in the tree by embedding a Base.
type Node interface {
	ID() uuid.UUID
	ObjectChanged() bool
	ModelChanged() bool
	Parent() Node
	OnLocalChange(fn LocalHandler) Handle
	OffLocalChange(h Handle) bool
	OnBubble(fn BubbleHandler) Handle
	OffBubble(h Handle) bool
	ClearChangeFlags()
	base() *Base
}

// Child is the constraint for node types held in slots and reference tables.
type Child interface {
	Node
	comparable
}

// Base carries the change state and both notification channels of a node.
// The zero value is not usable; entities call Init from their constructor.
type Base struct {
	id            uuid.UUID
	self          Node
	parent        *Base
	objectChanged bool
	modelChanged  bool
	local         registry[LocalHandler]
	bubble        registry[BubbleHandler]
	edges         map[*Base]*edge
	slots         []slot
}

// Init binds b to the entity embedding it and assigns a fresh identity.
// self must be the entity whose embedded Base is b.
func (b *Base) Init(self Node) {
	if self == nil || self.base() != b {
		panic("node: Init called with a node that does not embed this Base")
	}
	b.id = uuid.New()
	b.self = self
	b.edges = make(map[*Base]*edge)
}

func (b *Base) base() *Base { return b }

// ID returns the node's identity.
func (b *Base) ID() uuid.UUID { return b.id }

// ObjectChanged reports whether one of this node's own properties changed
// since the last clear.
func (b *Base) ObjectChanged() bool { return b.objectChanged }

// ModelChanged reports whether this node or anything below it changed since
// the last clear.
func (b *Base) ModelChanged() bool { return b.modelChanged }

// Parent returns the owner this node is attached to, or nil.
func (b *Base) Parent() Node {
	if b.parent == nil {
		return nil
	}
	return b.parent.self
}

// OnLocalChange subscribes fn to this node's local channel.
func (b *Base) OnLocalChange(fn LocalHandler) Handle { return b.local.add(fn) }

// OffLocalChange removes a local subscription. Unknown handles are ignored.
func (b *Base) OffLocalChange(h Handle) bool { return b.local.remove(h) }

// OnBubble subscribes fn to this node's bubble channel.
func (b *Base) OnBubble(fn BubbleHandler) Handle { return b.bubble.add(fn) }

// OffBubble removes a bubble subscription. Unknown handles are ignored.
func (b *Base) OffBubble(h Handle) bool { return b.bubble.remove(h) }

// ClearChangeFlags resets both flags on this node only. Use ClearAll to reset
// a whole subtree.
func (b *Base) ClearChangeFlags() {
	b.objectChanged = false
	b.modelChanged = false
}

// EmitLocalChange marks the node changed and notifies local subscribers in
// subscription order.
func (b *Base) EmitLocalChange(property string) {
	b.objectChanged = true
	b.modelChanged = true
	for _, e := range b.local.snapshot() {
		e.fn(b.self, property)
	}
}

// RouteBubble marks the subtree changed, prepends this node to the event path
// and hands the extended event to every bubble subscriber. It serves both
// events originating here and events forwarded by attached children.
func (b *Base) RouteBubble(ev BubbleEvent) {
	b.modelChanged = true
	ev = ev.Through(b.self)
	for _, e := range b.bubble.snapshot() {
		e.fn(ev)
	}
}

// SetProperty writes value into field when it differs from the current value,
// then emits a local change and routes a fresh bubble event from n. Equal
// values leave flags and subscribers untouched. It reports whether field
// changed.
func SetProperty[T comparable](n Node, field *T, value T, property string) bool {
	if *field == value {
		return false
	}
	*field = value
	b := n.base()
	b.EmitLocalChange(property)
	b.RouteBubble(NewBubbleEvent(property, b.self))
	return true
}
