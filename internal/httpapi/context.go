package httpapi

import (
	"context"
	"errors"
	"net/http"
)

// serverBaseCtx is canceled when the server shuts down. Defaults to
// Background if not set.
var serverBaseCtx = context.Background()

// SetBaseContext sets the process-level base context used by long-lived
// handlers such as the event stream.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// Reasons an event stream ends, reported by context.Cause.
var (
	errServerShutdown = errors.New("server shutting down")
	errClientGone     = errors.New("client went away")
)

// streamContext returns a context for one event stream. It ends with
// errServerShutdown when the base context is done, errClientGone when the
// request context is done, or the cause passed to stop. The first cause wins.
// stop must be called when the handler returns.
func streamContext(r *http.Request) (context.Context, func(cause error)) {
	ctx, cancel := context.WithCancelCause(context.Background())
	stopBase := context.AfterFunc(serverBaseCtx, func() { cancel(errServerShutdown) })
	stopReq := context.AfterFunc(r.Context(), func() { cancel(errClientGone) })
	return ctx, func(cause error) {
		stopBase()
		stopReq()
		cancel(cause)
	}
}

// streamEndReason names why ctx ended for the stream close log.
func streamEndReason(ctx context.Context) string {
	switch cause := context.Cause(ctx); {
	case cause == nil:
		return "open"
	case errors.Is(cause, errServerShutdown):
		return "shutdown"
	case errors.Is(cause, errClientGone):
		return "client"
	default:
		return cause.Error()
	}
}
