package session

import (
	"fmt"
	"net/http"
)

type nodeNotFoundError struct{ ref string }

func (e nodeNotFoundError) Error() string { return "node not found: " + e.ref }

func (e nodeNotFoundError) StatusCode() int { return http.StatusNotFound }

// IsNodeNotFound reports whether err names a node the session does not know.
func IsNodeNotFound(err error) bool {
	_, ok := err.(nodeNotFoundError)
	return ok
}

type unknownOpError struct{ op string }

func (e unknownOpError) Error() string { return fmt.Sprintf("unknown op %q", e.op) }

func (e unknownOpError) StatusCode() int { return http.StatusBadRequest }

// IsUnknownOp reports whether err rejects an operation name.
func IsUnknownOp(err error) bool {
	_, ok := err.(unknownOpError)
	return ok
}

type invalidOpError struct {
	op  string
	msg string
}

func (e invalidOpError) Error() string { return e.op + ": " + e.msg }

func (e invalidOpError) StatusCode() int { return http.StatusBadRequest }

// IsInvalidOp reports whether err rejects an operation whose arguments do not
// fit the nodes they name.
func IsInvalidOp(err error) bool {
	_, ok := err.(invalidOpError)
	return ok
}

type aliasTakenError struct{ alias string }

func (e aliasTakenError) Error() string { return fmt.Sprintf("alias %q already in use", e.alias) }

func (e aliasTakenError) StatusCode() int { return http.StatusConflict }

// IsAliasTaken reports whether err rejects an alias that names another node.
func IsAliasTaken(err error) bool {
	_, ok := err.(aliasTakenError)
	return ok
}

// OpError is returned by ApplyAll for the first op that failed.
type OpError struct {
	Index int
	Op    string
	Err   error
}

func (e *OpError) Error() string { return fmt.Sprintf("op %d (%s): %v", e.Index, e.Op, e.Err) }

func (e *OpError) Unwrap() error { return e.Err }
