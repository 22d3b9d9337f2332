package observe

import "fmt"

type invalidCursorError struct {
	cursor string
	err    error
}

func (e invalidCursorError) Error() string {
	return fmt.Sprintf("invalid event cursor %q: %v", e.cursor, e.err)
}

func (e invalidCursorError) Unwrap() error { return e.err }

// IsInvalidCursor reports whether err rejects an event id passed as cursor.
func IsInvalidCursor(err error) bool {
	_, ok := err.(invalidCursorError)
	return ok
}

type invalidFilterError struct {
	src string
	err error
}

func (e invalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: %v", e.src, e.err)
}

func (e invalidFilterError) Unwrap() error { return e.err }

// IsInvalidFilter reports whether err rejects a filter expression.
func IsInvalidFilter(err error) bool {
	_, ok := err.(invalidFilterError)
	return ok
}
