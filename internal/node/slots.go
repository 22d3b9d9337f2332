package node

// slot is an owned-child declaration traversed by ClearAll.
type slot interface {
	slotName() string
	nodes() []Node
}

// Ref is a single-valued owned slot on a container entity.
type Ref[T Child] struct {
	owner *Base
	name  string
	value T
	set   bool
	owned bool
}

// NewRef declares a single-valued slot named name on owner.
func NewRef[T Child](owner Node, name string) *Ref[T] {
	r := &Ref[T]{owner: owner.base(), name: name}
	r.owner.slots = append(r.owner.slots, r)
	return r
}

func (r *Ref[T]) slotName() string { return r.name }

func (r *Ref[T]) nodes() []Node {
	if !r.set {
		return nil
	}
	return []Node{r.value}
}

// Name is the property name notified when the slot changes.
func (r *Ref[T]) Name() string { return r.name }

// Get returns the current value and whether one is set.
func (r *Ref[T]) Get() (T, bool) { return r.value, r.set }

// Owned reports whether the current value is wired for bubbling.
func (r *Ref[T]) Owned() bool { return r.set && r.owned }

// Set stores v without wiring its bubble channel. A previously owned value is
// detached first; setting the current value again only drops its wiring.
// Setting the zero value clears the slot.
func (r *Ref[T]) Set(v T) {
	var zero T
	if v == zero {
		r.Clear()
		return
	}
	if r.set && r.value == v {
		r.release()
		r.owned = false
		return
	}
	r.release()
	r.value, r.set, r.owned = v, true, false
	r.owner.EmitLocalChange(r.name)
}

// Own attaches v and stores it, detaching a previously owned value.
func (r *Ref[T]) Own(v T) error {
	var zero T
	if v == zero {
		return ErrNilNode
	}
	if r.set && r.value == v && r.owned {
		return nil
	}
	if err := r.owner.AttachChild(v); err != nil {
		return err
	}
	if r.set && r.value == v {
		// v was held bare; only the wiring changes.
		r.owned = true
		return nil
	}
	r.release()
	r.value, r.set, r.owned = v, true, true
	r.owner.EmitLocalChange(r.name)
	return nil
}

// Clear detaches and removes the current value. An empty slot is left alone.
func (r *Ref[T]) Clear() {
	if !r.set {
		return
	}
	r.release()
	var zero T
	r.value, r.set, r.owned = zero, false, false
	r.owner.EmitLocalChange(r.name)
}

func (r *Ref[T]) release() {
	if r.set && r.owned {
		r.owner.DetachChild(r.value)
	}
}

type member[T Child] struct {
	node  T
	owned bool
}

// List is an ordered owned collection on a container entity.
type List[T Child] struct {
	owner   *Base
	name    string
	members []member[T]
}

// NewList declares an ordered collection slot named name on owner.
func NewList[T Child](owner Node, name string) *List[T] {
	l := &List[T]{owner: owner.base(), name: name}
	l.owner.slots = append(l.owner.slots, l)
	return l
}

func (l *List[T]) slotName() string { return l.name }

func (l *List[T]) nodes() []Node {
	out := make([]Node, len(l.members))
	for i, m := range l.members {
		out[i] = m.node
	}
	return out
}

// Name is the property name notified when the collection changes.
func (l *List[T]) Name() string { return l.name }

// Len returns the number of members.
func (l *List[T]) Len() int { return len(l.members) }

// At returns the member at index i.
func (l *List[T]) At(i int) T { return l.members[i].node }

// Items returns a copy of the members in order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.members))
	for i, m := range l.members {
		out[i] = m.node
	}
	return out
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i, m := range l.members {
		if m.node == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is a member.
func (l *List[T]) Contains(v T) bool { return l.IndexOf(v) >= 0 }

// Owned reports whether v is a member wired for bubbling.
func (l *List[T]) Owned(v T) bool {
	for _, m := range l.members {
		if m.node == v && m.owned {
			return true
		}
	}
	return false
}

// Add appends v without wiring its bubble channel. The zero value is ignored.
func (l *List[T]) Add(v T) {
	var zero T
	if v == zero {
		return
	}
	l.members = append(l.members, member[T]{node: v})
	l.owner.EmitLocalChange(l.name)
}

// Own attaches v and appends it.
func (l *List[T]) Own(v T) error {
	var zero T
	if v == zero {
		return ErrNilNode
	}
	if err := l.owner.AttachChild(v); err != nil {
		return err
	}
	l.members = append(l.members, member[T]{node: v, owned: true})
	l.owner.EmitLocalChange(l.name)
	return nil
}

// Remove drops the first occurrence of v, detaching it before it leaves the
// collection when it was owned. It reports whether v was a member.
func (l *List[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	if l.members[i].owned {
		l.owner.DetachChild(v)
	}
	l.members = append(l.members[:i:i], l.members[i+1:]...)
	l.owner.EmitLocalChange(l.name)
	return true
}
