package story

import "fmt"

type unknownSlotError struct {
	kind Kind
	slot string
}

func (e unknownSlotError) Error() string { return fmt.Sprintf("%s has no slot %q", e.kind, e.slot) }

// IsUnknownSlot reports whether err names a slot the entity does not declare.
func IsUnknownSlot(err error) bool {
	_, ok := err.(unknownSlotError)
	return ok
}

type unknownPropertyError struct {
	kind     Kind
	property string
}

func (e unknownPropertyError) Error() string {
	return fmt.Sprintf("%s has no property %q", e.kind, e.property)
}

// IsUnknownProperty reports whether err names a property the entity does not have.
func IsUnknownProperty(err error) bool {
	_, ok := err.(unknownPropertyError)
	return ok
}

type invalidValueError struct {
	kind     Kind
	property string
	want     string
	value    any
}

func (e invalidValueError) Error() string {
	return fmt.Sprintf("%s.%s: expected %s, got %T", e.kind, e.property, e.want, e.value)
}

// IsInvalidValue reports whether err rejects a value of the wrong type.
func IsInvalidValue(err error) bool {
	_, ok := err.(invalidValueError)
	return ok
}

type kindMismatchError struct {
	slot string
	want Kind
	got  Kind
}

func (e kindMismatchError) Error() string {
	return fmt.Sprintf("slot %s holds %s, got %s", e.slot, e.want, e.got)
}

// IsKindMismatch reports whether err rejects an entity of the wrong kind for a slot.
func IsKindMismatch(err error) bool {
	_, ok := err.(kindMismatchError)
	return ok
}

type unknownKindError struct{ kind Kind }

func (e unknownKindError) Error() string { return fmt.Sprintf("unknown entity kind %q", e.kind) }

// IsUnknownKind reports whether err names an entity kind that does not exist.
func IsUnknownKind(err error) bool {
	_, ok := err.(unknownKindError)
	return ok
}
