package node

// edge is one owner→child subscription. refs counts how many owned slots of
// the owner hold the child; the subscription exists while refs > 0.
type edge struct {
	handle Handle
	refs   int
}

// AttachChild subscribes b's RouteBubble to child's bubble channel. Attaching
// the same child again does not add a second subscription, so events are
// never delivered twice. A child still attached elsewhere is rejected with
// ErrAlreadyOwned.
func (b *Base) AttachChild(child Node) error {
	cb := baseOf(child)
	if cb == nil {
		return ErrNilNode
	}
	for p := b; p != nil; p = p.parent {
		if p == cb {
			return ErrCycle
		}
	}
	if cb.parent != nil && cb.parent != b {
		return ErrAlreadyOwned
	}
	if e, ok := b.edges[cb]; ok {
		e.refs++
		return nil
	}
	b.edges[cb] = &edge{handle: cb.bubble.add(b.RouteBubble), refs: 1}
	cb.parent = b
	return nil
}

// DetachChild releases one attachment of child. The bubble subscription is
// removed once no owned slot of b holds the child anymore. Detaching a child
// that was never attached is a no-op and returns false.
func (b *Base) DetachChild(child Node) bool {
	cb := baseOf(child)
	if cb == nil {
		return false
	}
	e, ok := b.edges[cb]
	if !ok {
		return false
	}
	e.refs--
	if e.refs > 0 {
		return true
	}
	cb.bubble.remove(e.handle)
	delete(b.edges, cb)
	cb.parent = nil
	return true
}

// Attached reports whether child's bubble channel is wired to b.
func (b *Base) Attached(child Node) bool {
	cb := baseOf(child)
	if cb == nil {
		return false
	}
	_, ok := b.edges[cb]
	return ok
}

// baseOf returns the Base of n, or nil when n is nil or a typed nil pointer.
// Entities embed Base by value, so reaching it through a nil entity pointer
// faults instead of yielding a nil *Base.
func baseOf(n Node) (b *Base) {
	if n == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			b = nil
		}
	}()
	return n.base()
}
