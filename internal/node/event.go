package node

// LocalHandler observes a change of one of source's own properties.
type LocalHandler func(source Node, property string)

// BubbleHandler observes a change that originated at or below the node it is
// subscribed to.
type BubbleHandler func(BubbleEvent)

// BubbleEvent records one field change as it travels from its origin towards
// the root. Values are immutable: each hop derives a new event with the hop
// prepended to the path.
type BubbleEvent struct {
	property string
	origin   Node
	path     []Node
}

// NewBubbleEvent starts an event for property on origin with an empty path.
// The origin adds itself when the event is routed through it.
func NewBubbleEvent(property string, origin Node) BubbleEvent {
	return BubbleEvent{property: property, origin: origin}
}

// Property is the name of the property that changed at the origin.
func (e BubbleEvent) Property() string { return e.property }

// Origin is the node whose property changed.
func (e BubbleEvent) Origin() Node { return e.origin }

// Path returns the nodes the event has passed through, outermost first and
// origin last. The returned slice is a copy.
func (e BubbleEvent) Path() []Node {
	out := make([]Node, len(e.path))
	copy(out, e.path)
	return out
}

// Len is the number of nodes on the path.
func (e BubbleEvent) Len() int { return len(e.path) }

// Depth is the number of ancestors the event has passed above its origin.
func (e BubbleEvent) Depth() int {
	if len(e.path) == 0 {
		return 0
	}
	return len(e.path) - 1
}

// Root is the outermost node reached so far, nil before the first hop.
func (e BubbleEvent) Root() Node {
	if len(e.path) == 0 {
		return nil
	}
	return e.path[0]
}

// Through returns a copy of e with n prepended to the path.
func (e BubbleEvent) Through(n Node) BubbleEvent {
	path := make([]Node, 0, len(e.path)+1)
	path = append(path, n)
	path = append(path, e.path...)
	return BubbleEvent{property: e.property, origin: e.origin, path: path}
}
