package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nyxventure/internal/script"
	"nyxventure/internal/session"
	"nyxventure/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Ready() bool
	Tree() types.TreeNode
	Subtree(ref string) (types.TreeNode, error)
	ApplyAll(ops []types.Op) ([]types.OpResult, error)
	Clear()
	Events(after string, limit int) ([]types.Event, error)
	Subscribe(buffer int, filter string) (<-chan types.Event, func(), error)
}

var _ Service = (*session.Session)(nil)

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)
	if corsEnabled {
		methods := corsAllowedMethods
		if len(methods) == 0 {
			methods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
		}
		headers := corsAllowedHeaders
		if len(headers) == 0 {
			headers = []string{"Content-Type"}
		}
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: methods,
			AllowedHeaders: headers,
			MaxAge:         300,
		}))
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5, "application/json"))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/tree", func(w http.ResponseWriter, r *http.Request) {
		ref := r.URL.Query().Get("node")
		if ref == "" {
			writeJSON(w, http.StatusOK, svc.Tree())
			return
		}
		tn, err := svc.Subtree(ref)
		if err != nil {
			writeJSONError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, tn)
	})

	r.Post("/ops", func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		// Limit body size (configurable, default 1MiB)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.OpsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// Oversized bodies also end up here; report them as invalid JSON.
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if len(req.Ops) == 0 {
			writeJSONError(w, http.StatusBadRequest, "ops are required")
			return
		}
		writeOps(w, svc, req.Ops)
	})

	r.Post("/clear", func(w http.ResponseWriter, r *http.Request) {
		svc.Clear()
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/events", eventsHandler(svc.Events))

	r.Get("/events/archive", func(w http.ResponseWriter, r *http.Request) {
		if archive == nil {
			writeJSONError(w, http.StatusNotFound, "event archive not configured")
			return
		}
		eventsHandler(archive.Since)(w, r)
	})

	r.Get("/events/stream", streamHandler(svc))

	r.Get("/scripts", func(w http.ResponseWriter, r *http.Request) {
		scripts, err := loadScripts()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp := types.ScriptsResponse{Scripts: []types.ScriptInfo{}}
		for _, s := range scripts {
			resp.Scripts = append(resp.Scripts, types.ScriptInfo{Name: s.Name, Path: s.Path, Ops: len(s.Ops)})
		}
		writeJSON(w, http.StatusOK, resp)
	})

	r.Post("/scripts/{name}/run", func(w http.ResponseWriter, r *http.Request) {
		scripts, err := loadScripts()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s, ok := script.Find(scripts, chi.URLParam(r, "name"))
		if !ok {
			writeJSONError(w, http.StatusNotFound, "script not found: "+chi.URLParam(r, "name"))
			return
		}
		writeOps(w, svc, s.Ops)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// writeOps applies ops and reports every result up to the first failure. A
// failed op sets the response status from the error.
func writeOps(w http.ResponseWriter, svc Service, ops []types.Op) {
	results, err := svc.ApplyAll(ops)
	resp := types.OpsResponse{Results: results}
	if resp.Results == nil {
		resp.Results = []types.OpResult{}
	}
	if err == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	status := statusFor(err)
	var opErr *session.OpError
	if errors.As(err, &opErr) {
		idx := opErr.Index
		resp.Failed = &idx
	}
	resp.Error = err.Error()
	resp.Code = status
	IncrementRejected(strconv.Itoa(status))
	if zlog != nil {
		zlog.Debug().Int("status", status).Err(err).Msg("ops rejected")
	}
	writeJSON(w, status, resp)
}

// eventsHandler pages through read with the after and limit query parameters.
func eventsHandler(read func(after string, limit int) ([]types.Event, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit := 0
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeJSONError(w, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
			limit = n
		}
		after := q.Get("after")
		evs, err := read(after, limit)
		if err != nil {
			writeJSONError(w, statusFor(err), err.Error())
			return
		}
		resp := types.EventsResponse{Events: evs, Next: after}
		if len(evs) > 0 {
			resp.Next = evs[len(evs)-1].ID
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func loadScripts() ([]script.Script, error) {
	if scriptsDir == "" {
		return nil, nil
	}
	return script.LoadDir(scriptsDir)
}
