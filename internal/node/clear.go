package node

// ClearAll resets the change flags of n and, depth first, of every node held
// in its owned slots. Non-owned tables and sets are skipped. No event fires.
func ClearAll(n Node) {
	if n == nil {
		return
	}
	b := n.base()
	b.ClearChangeFlags()
	for _, s := range b.slots {
		for _, child := range s.nodes() {
			ClearAll(child)
		}
	}
}

// Walk visits n and every node held in its owned slots depth first, parents
// before children. visit receives the slot name the node was found in, empty
// for n itself. Returning false skips the node's subtree.
func Walk(n Node, visit func(slotName string, n Node) bool) {
	walk("", n, visit)
}

func walk(slotName string, n Node, visit func(string, Node) bool) {
	if n == nil || !visit(slotName, n) {
		return
	}
	for _, s := range n.base().slots {
		for _, child := range s.nodes() {
			walk(s.slotName(), child, visit)
		}
	}
}

// Slots returns the names of the owned slots declared on n in declaration order.
func Slots(n Node) []string {
	b := n.base()
	out := make([]string, len(b.slots))
	for i, s := range b.slots {
		out[i] = s.slotName()
	}
	return out
}

// SlotNodes returns the nodes currently held in the owned slot named name.
func SlotNodes(n Node, name string) ([]Node, bool) {
	for _, s := range n.base().slots {
		if s.slotName() == name {
			return s.nodes(), true
		}
	}
	return nil, false
}

// ClearAll resets the flags of this node and its owned subtree.
func (b *Base) ClearAll() {
	if b.self == nil {
		b.ClearChangeFlags()
		return
	}
	ClearAll(b.self)
}
