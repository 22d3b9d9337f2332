package observe

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"nyxventure/pkg/types"
)

func newEvents(t *testing.T, n int) []types.Event {
	t.Helper()
	ids := NewIDSource()
	out := make([]types.Event, n)
	for i := range out {
		id, at := ids.Next()
		out[i] = types.Event{ID: id.String(), Channel: types.ChannelLocal, Kind: "feature", Property: "Name", Time: at.UnixMilli()}
	}
	return out
}

func TestIDSourceIsMonotonic(t *testing.T) {
	ids := NewIDSource()
	fixed := time.UnixMilli(1700000000000)
	ids.now = func() time.Time { return fixed }
	prev, _ := ids.Next()
	for i := 0; i < 100; i++ {
		id, at := ids.Next()
		if id.Compare(prev) <= 0 {
			t.Fatalf("id %s not after %s", id, prev)
		}
		if !at.Equal(fixed) {
			t.Fatalf("time=%v", at)
		}
		prev = id
	}
}

func TestJournalSince(t *testing.T) {
	j := NewJournal(10)
	evs := newEvents(t, 5)
	for _, e := range evs {
		j.Publish(e)
	}
	all, err := j.Since("", 0)
	if err != nil || len(all) != 5 {
		t.Fatalf("all=%d err=%v", len(all), err)
	}
	got, err := j.Since(evs[1].ID, 2)
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if len(got) != 2 || got[0].ID != evs[2].ID || got[1].ID != evs[3].ID {
		t.Fatalf("unexpected page: %+v", got)
	}
	got, _ = j.Since(evs[4].ID, 0)
	if len(got) != 0 {
		t.Fatalf("read past the end: %+v", got)
	}
	if _, err := j.Since("not-an-id", 0); !IsInvalidCursor(err) {
		t.Fatalf("expected invalid cursor, got %v", err)
	}
}

func TestJournalRingDropsOldest(t *testing.T) {
	j := NewJournal(3)
	evs := newEvents(t, 5)
	for _, e := range evs {
		j.Publish(e)
	}
	if j.Len() != 3 {
		t.Fatalf("len=%d", j.Len())
	}
	got, _ := j.Since("", 0)
	if got[0].ID != evs[2].ID || got[2].ID != evs[4].ID {
		t.Fatalf("unexpected contents: %+v", got)
	}
	// A cursor older than the ring still reads what is retained.
	got, _ = j.Since(evs[0].ID, 0)
	if len(got) != 3 {
		t.Fatalf("len=%d", len(got))
	}
}

func TestFilter(t *testing.T) {
	ev := types.Event{Channel: types.ChannelBubble, Kind: "link", Property: "Text", Depth: 2, Path: []string{"g", "c", "l"}, Alias: "door"}
	cases := []struct {
		src  string
		want bool
	}{
		{"", true},
		{`channel == "bubble"`, true},
		{`kind in ["chapter", "link"] && depth >= 2`, true},
		{`"c" in path`, true},
		{`alias == "window"`, false},
		{`property startsWith "Te"`, true},
	}
	for _, c := range cases {
		f, err := CompileFilter(c.src)
		if err != nil {
			t.Fatalf("%q: %v", c.src, err)
		}
		if got := f.Match(ev); got != c.want {
			t.Fatalf("%q matched=%v want %v", c.src, got, c.want)
		}
	}
	for _, bad := range []string{"depth +", "kind", "unknown == 1"} {
		if _, err := CompileFilter(bad); !IsInvalidFilter(err) {
			t.Fatalf("%q: expected invalid filter, got %v", bad, err)
		}
	}
}

func TestHubDeliversAndDrops(t *testing.T) {
	h := NewHub()
	f, _ := CompileFilter(`kind == "feature"`)
	ch, cancel := h.Subscribe(1, f)
	all, cancelAll := h.Subscribe(4, nil)
	defer cancelAll()
	if h.Len() != 2 {
		t.Fatalf("len=%d", h.Len())
	}
	h.Publish(types.Event{ID: "1", Kind: "feature"})
	h.Publish(types.Event{ID: "2", Kind: "skill"})
	h.Publish(types.Event{ID: "3", Kind: "feature"})

	if ev := <-ch; ev.ID != "1" {
		t.Fatalf("got %s", ev.ID)
	}
	select {
	case ev := <-ch:
		t.Fatalf("full buffer should have dropped %s", ev.ID)
	default:
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered subscriber got %d", len(all))
	}
	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("channel open after cancel")
	}
	if h.Len() != 1 {
		t.Fatalf("len after cancel=%d", h.Len())
	}
	h.Publish(types.Event{ID: "4", Kind: "feature"})
}

func TestLoggerWritesBubbleFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	l.Publish(types.Event{ID: "x", Channel: types.ChannelBubble, Kind: "link", Node: "n", Property: "Text", Depth: 1, Path: []string{"g", "n"}})
	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if line["message"] != "model event" || line["kind"] != "link" || line["depth"] != float64(1) {
		t.Fatalf("unexpected line: %v", line)
	}
	if p, ok := line["path"].([]any); !ok || len(p) != 2 {
		t.Fatalf("path=%v", line["path"])
	}

	buf.Reset()
	quiet := NewLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	quiet.Publish(types.Event{ID: "y", Channel: types.ChannelLocal})
	if buf.Len() != 0 {
		t.Fatalf("debug event logged at info level: %s", buf.String())
	}
}

func TestMetricsExposed(t *testing.T) {
	Publishers{Metrics{}, nil, Noop{}}.Publish(types.Event{Channel: types.ChannelBubble, Kind: "chapter", Depth: 1})
	rr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, name := range []string{"nyx_model_events_total", "nyx_model_bubble_depth", "nyx_stream_subscribers"} {
		if !strings.Contains(body, name) {
			t.Fatalf("missing %s in metrics", name)
		}
	}
}

func TestMemoryPublisher(t *testing.T) {
	p := NewMemoryPublisher()
	p.Publish(types.Event{ID: "a"})
	evs := p.Events()
	evs[0].ID = "changed"
	if p.Events()[0].ID != "a" {
		t.Fatalf("Events returned internal storage")
	}
	p.Reset()
	if len(p.Events()) != 0 {
		t.Fatalf("reset kept events")
	}
}
