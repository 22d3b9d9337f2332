package node

// Entry is one key/value pair of a Table.
type Entry[K Child, V comparable] struct {
	Key   K
	Value V
}

// Table maps nodes owned elsewhere to values. It never wires bubbling for its
// keys; changes notify the owner's local channel under the table name.
type Table[K Child, V comparable] struct {
	owner  *Base
	name   string
	keys   []K
	values map[K]V
}

// NewTable declares a non-owned reference table named name on owner.
func NewTable[K Child, V comparable](owner Node, name string) *Table[K, V] {
	return &Table[K, V]{owner: owner.base(), name: name, values: make(map[K]V)}
}

// Name is the property name notified when the table changes.
func (t *Table[K, V]) Name() string { return t.name }

// Len returns the number of entries.
func (t *Table[K, V]) Len() int { return len(t.keys) }

// Lookup returns the value stored for k.
func (t *Table[K, V]) Lookup(k K) (V, bool) {
	v, ok := t.values[k]
	return v, ok
}

// Set stores v for k, appending k when new. Storing the current value again
// is a no-op.
func (t *Table[K, V]) Set(k K, v V) {
	var zero K
	if k == zero {
		return
	}
	cur, ok := t.values[k]
	if ok && cur == v {
		return
	}
	if !ok {
		t.keys = append(t.keys, k)
	}
	t.values[k] = v
	t.owner.EmitLocalChange(t.name)
}

// Remove deletes k and reports whether it was present.
func (t *Table[K, V]) Remove(k K) bool {
	if _, ok := t.values[k]; !ok {
		return false
	}
	delete(t.values, k)
	for i, key := range t.keys {
		if key == k {
			t.keys = append(t.keys[:i:i], t.keys[i+1:]...)
			break
		}
	}
	t.owner.EmitLocalChange(t.name)
	return true
}

// Entries returns the entries in insertion order.
func (t *Table[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry[K, V]{Key: k, Value: t.values[k]}
	}
	return out
}

// Set is an insertion-ordered set of nodes owned elsewhere.
type Set[T Child] struct {
	owner *Base
	name  string
	items []T
}

// NewSet declares a non-owned reference set named name on owner.
func NewSet[T Child](owner Node, name string) *Set[T] {
	return &Set[T]{owner: owner.base(), name: name}
}

// Name is the property name notified when the set changes.
func (s *Set[T]) Name() string { return s.name }

// Len returns the number of members.
func (s *Set[T]) Len() int { return len(s.items) }

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	for _, it := range s.items {
		if it == v {
			return true
		}
	}
	return false
}

// Items returns a copy of the members in insertion order.
func (s *Set[T]) Items() []T { return append([]T(nil), s.items...) }

// Add inserts v and reports whether it was new.
func (s *Set[T]) Add(v T) bool {
	var zero T
	if v == zero || s.Contains(v) {
		return false
	}
	s.items = append(s.items, v)
	s.owner.EmitLocalChange(s.name)
	return true
}

// Remove deletes v and reports whether it was a member.
func (s *Set[T]) Remove(v T) bool {
	for i, it := range s.items {
		if it == v {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			s.owner.EmitLocalChange(s.name)
			return true
		}
	}
	return false
}
