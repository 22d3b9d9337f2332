package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = streamPongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// With CORS enabled, cross-origin handshakes need a configured origin.
	CheckOrigin: checkStreamOrigin,
}

func checkStreamOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || !corsEnabled {
		return true
	}
	for _, o := range corsAllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// streamHandler upgrades to a websocket and writes every matching event as a
// JSON text message until the client goes away or the server shuts down.
// Query parameters: filter (expression), buffer (subscriber buffer size).
func streamHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buffer := 0
		if v := r.URL.Query().Get("buffer"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeJSONError(w, http.StatusBadRequest, "buffer must be a non-negative integer")
				return
			}
			buffer = n
		}
		events, cancel, err := svc.Subscribe(buffer, r.URL.Query().Get("filter"))
		if err != nil {
			writeJSONError(w, statusFor(err), err.Error())
			return
		}
		defer cancel()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the error response.
			return
		}
		defer conn.Close()

		ctx, stop := streamContext(r)
		defer stop(nil)

		// Reader: handles pongs and close frames, ends the stream when the
		// client disconnects.
		_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(streamPongWait))
		})
		go func() {
			defer stop(errClientGone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		rid := middleware.GetReqID(r.Context())
		if zlog != nil {
			zlog.Info().Str("request_id", rid).Str("filter", r.URL.Query().Get("filter")).Msg("stream open")
		}
		ping := time.NewTicker(streamPingPeriod)
		defer ping.Stop()
		for {
			select {
			case <-ctx.Done():
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(streamWriteWait))
				if zlog != nil {
					zlog.Info().Str("request_id", rid).Str("reason", streamEndReason(ctx)).Msg("stream closed")
				}
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
					return
				}
			}
		}
	}
}
