package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"nyxventure/internal/session"
)

func TestMountSwagger_ServesDoc(t *testing.T) {
	r := chi.NewRouter()
	MountSwagger(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var doc struct {
		Info  struct{ Title string }
		Paths map[string]json.RawMessage
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	if doc.Info.Title != "nyxd API" {
		t.Fatalf("title=%q", doc.Info.Title)
	}
	for _, p := range []string{"/tree", "/ops", "/events", "/events/stream", "/scripts/{name}/run"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Fatalf("path %s missing from doc", p)
		}
	}
}

func TestNewMux_MountsSwaggerUI(t *testing.T) {
	h := NewMux(session.New(session.Config{}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
