package story

import "nyxventure/internal/node"

// Kind names an entity type.
type Kind string

const (
	KindGame          Kind = "game"
	KindChapter       Kind = "chapter"
	KindLink          Kind = "link"
	KindFeature       Kind = "feature"
	KindSkill         Kind = "skill"
	KindCharacterType Kind = "character_type"
	KindArtifact      Kind = "artifact"
)

// Entity is the editing surface shared by every story entity.
type Entity interface {
	node.Node
	Kind() Kind
	// Label is the entity's display name: its title or name, possibly empty.
	Label() string
	// Fields returns the scalar properties in declaration order.
	Fields() []Field
	// SetField assigns a scalar property by name. Assigning the current value
	// is a no-op.
	SetField(property string, value any) error
	ClearAll()
}

// Container is an entity owning child entities in named slots.
type Container interface {
	Entity
	// Create builds a new entity, owns it in slot and returns it.
	Create(slot string) (Entity, error)
	// Add inserts child into slot for membership only.
	Add(slot string, child Entity) error
	// Own inserts child into slot and wires its bubbling.
	Own(slot string, child Entity) error
	// Remove releases child from slot and reports whether it was there.
	Remove(slot string, child Entity) (bool, error)
}

// Field is one scalar property and its current value.
type Field struct {
	Name  string
	Value any
}

type fieldSpec struct {
	name string
	get  func() any
	set  func(v any) (ok bool, want string)
}

func stringField(name string, get func() string, set func(string) bool) fieldSpec {
	return fieldSpec{
		name: name,
		get:  func() any { return get() },
		set: func(v any) (bool, string) {
			s, ok := asString(v)
			if !ok {
				return false, "string"
			}
			set(s)
			return true, ""
		},
	}
}

func intField(name string, get func() int, set func(int) bool) fieldSpec {
	return fieldSpec{
		name: name,
		get:  func() any { return get() },
		set: func(v any) (bool, string) {
			n, ok := asInt(v)
			if !ok {
				return false, "integer"
			}
			set(n)
			return true, ""
		},
	}
}

func boolField(name string, get func() bool, set func(bool) bool) fieldSpec {
	return fieldSpec{
		name: name,
		get:  func() any { return get() },
		set: func(v any) (bool, string) {
			b, ok := asBool(v)
			if !ok {
				return false, "boolean"
			}
			set(b)
			return true, ""
		},
	}
}

func listFields(specs []fieldSpec) []Field {
	out := make([]Field, len(specs))
	for i, s := range specs {
		out[i] = Field{Name: s.name, Value: s.get()}
	}
	return out
}

func assignField(kind Kind, specs []fieldSpec, property string, value any) error {
	for _, s := range specs {
		if s.name != property {
			continue
		}
		if ok, want := s.set(value); !ok {
			return invalidValueError{kind: kind, property: property, want: want, value: value}
		}
		return nil
	}
	return unknownPropertyError{kind: kind, property: property}
}

// slotOps adapts one typed slot to the Container surface.
type slotOps struct {
	create func() Entity
	add    func(Entity) error
	own    func(Entity) error
	remove func(Entity) (bool, error)
}

type slotTable map[string]slotOps

func (t slotTable) lookup(kind Kind, slot string) (slotOps, error) {
	ops, ok := t[slot]
	if !ok {
		return slotOps{}, unknownSlotError{kind: kind, slot: slot}
	}
	return ops, nil
}

func (t slotTable) create(kind Kind, slot string) (Entity, error) {
	ops, err := t.lookup(kind, slot)
	if err != nil {
		return nil, err
	}
	return ops.create(), nil
}

func (t slotTable) add(kind Kind, slot string, child Entity) error {
	ops, err := t.lookup(kind, slot)
	if err != nil {
		return err
	}
	return ops.add(child)
}

func (t slotTable) own(kind Kind, slot string, child Entity) error {
	ops, err := t.lookup(kind, slot)
	if err != nil {
		return err
	}
	return ops.own(child)
}

func (t slotTable) remove(kind Kind, slot string, child Entity) (bool, error) {
	ops, err := t.lookup(kind, slot)
	if err != nil {
		return false, err
	}
	return ops.remove(child)
}

type child interface {
	Entity
	comparable
}

func cast[T child](slot string, want Kind, e Entity) (T, error) {
	v, ok := e.(T)
	if !ok {
		var zero T
		got := Kind("nil")
		if e != nil {
			got = e.Kind()
		}
		return zero, kindMismatchError{slot: slot, want: want, got: got}
	}
	return v, nil
}

func listSlot[T child](l *node.List[T], want Kind, create func() T) slotOps {
	return slotOps{
		create: func() Entity { return create() },
		add: func(e Entity) error {
			v, err := cast[T](l.Name(), want, e)
			if err != nil {
				return err
			}
			l.Add(v)
			return nil
		},
		own: func(e Entity) error {
			v, err := cast[T](l.Name(), want, e)
			if err != nil {
				return err
			}
			return l.Own(v)
		},
		remove: func(e Entity) (bool, error) {
			v, err := cast[T](l.Name(), want, e)
			if err != nil {
				return false, err
			}
			return l.Remove(v), nil
		},
	}
}

func refSlot[T child](r *node.Ref[T], want Kind, create func() T) slotOps {
	return slotOps{
		create: func() Entity { return create() },
		add: func(e Entity) error {
			v, err := cast[T](r.Name(), want, e)
			if err != nil {
				return err
			}
			r.Set(v)
			return nil
		},
		own: func(e Entity) error {
			v, err := cast[T](r.Name(), want, e)
			if err != nil {
				return err
			}
			return r.Own(v)
		},
		remove: func(e Entity) (bool, error) {
			v, err := cast[T](r.Name(), want, e)
			if err != nil {
				return false, err
			}
			if cur, ok := r.Get(); !ok || cur != v {
				return false, nil
			}
			r.Clear()
			return true, nil
		},
	}
}

func refValue[T child](r *node.Ref[T]) T {
	v, _ := r.Get()
	return v
}

// Reference is an association to an entity owned elsewhere.
type Reference struct {
	Name   string
	Target Entity
	// Value is the score stored with the reference, nil when the reference
	// carries none.
	Value any
}

// Referrer is implemented by entities holding non-owned references.
type Referrer interface {
	References() []Reference
}

// New builds an unattached entity of kind.
func New(kind Kind) (Entity, error) {
	switch kind {
	case KindGame:
		return NewGame(), nil
	case KindChapter:
		return NewChapter(), nil
	case KindLink:
		return NewLink(), nil
	case KindFeature:
		return NewFeature(), nil
	case KindSkill:
		return NewSkill(), nil
	case KindCharacterType:
		return NewCharacterType(), nil
	case KindArtifact:
		return NewArtifact(), nil
	}
	return nil, unknownKindError{kind: kind}
}
