package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"nyxventure/internal/node"
	"nyxventure/internal/observe"
	"nyxventure/internal/story"
	"nyxventure/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps well-known model and session errors to HTTP status codes.
func statusFor(err error) int {
	var he HTTPError
	switch {
	case errors.As(err, &he):
		return he.StatusCode()
	case errors.Is(err, node.ErrAlreadyOwned), errors.Is(err, node.ErrCycle):
		return http.StatusConflict
	case errors.Is(err, node.ErrNilNode):
		return http.StatusBadRequest
	}
	for _, bad := range []func(error) bool{
		story.IsUnknownSlot,
		story.IsUnknownProperty,
		story.IsInvalidValue,
		story.IsKindMismatch,
		story.IsUnknownKind,
		observe.IsInvalidCursor,
		observe.IsInvalidFilter,
	} {
		// The IsX helpers match the concrete error only, so test every link.
		for e := err; e != nil; e = errors.Unwrap(e) {
			if bad(e) {
				return http.StatusBadRequest
			}
		}
	}
	return http.StatusInternalServerError
}
