package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"nyxventure/internal/session"
	"nyxventure/pkg/types"
)

func dialStream(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events/stream" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("dial: %v (status %d)", err, status)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestStreamDeliversFilteredEvents(t *testing.T) {
	sess := session.New(session.Config{})
	srv := httptest.NewServer(NewMux(sess))
	defer srv.Close()

	conn := dialStream(t, srv, `?filter=channel+%3D%3D+%22bubble%22`)
	// The subscription exists before the upgrade completes, so edits applied
	// now are delivered.
	if _, err := sess.Apply(types.Op{Op: "set", Target: "game", Property: "Title", Value: "Live"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev types.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read: %v", err)
	}
	if ev.Channel != types.ChannelBubble || ev.Property != "Title" || ev.ID == "" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestStreamRejectsBadFilter(t *testing.T) {
	srv := httptest.NewServer(NewMux(session.New(session.Config{})))
	defer srv.Close()
	resp, err := http.Get(srv.URL + "/events/stream?filter=depth+%2B")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	resp2, err := http.Get(srv.URL + "/events/stream?buffer=x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad buffer, got %d", resp2.StatusCode)
	}
}

func TestStreamClosesOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	SetBaseContext(ctx)
	defer SetBaseContext(nil)

	srv := httptest.NewServer(NewMux(session.New(session.Config{})))
	defer srv.Close()
	conn := dialStream(t, srv, "")
	cancel()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected normal close, got %v", err)
	}
}

func TestCheckStreamOrigin(t *testing.T) {
	defer SetCORSOptions(false, nil, nil, nil)
	r := httptest.NewRequest(http.MethodGet, "/events/stream", nil)
	r.Header.Set("Origin", "http://evil.example")
	if !checkStreamOrigin(r) {
		t.Fatalf("origin rejected with CORS disabled")
	}
	SetCORSOptions(true, []string{"http://good.example"}, nil, nil)
	if checkStreamOrigin(r) {
		t.Fatalf("unlisted origin accepted")
	}
	r.Header.Set("Origin", "http://good.example")
	if !checkStreamOrigin(r) {
		t.Fatalf("listed origin rejected")
	}
}
