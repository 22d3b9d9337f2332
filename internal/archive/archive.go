// Package archive persists model events to SQLite so they outlive the
// in-memory journal.
package archive

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"nyxventure/internal/observe"
	"nyxventure/pkg/types"
)

var writeErrorsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "nyx",
		Subsystem: "archive",
		Name:      "write_errors_total",
		Help:      "Events that could not be written to the archive",
	},
)

func init() {
	prometheus.MustRegister(writeErrorsTotal)
}

// Store appends every published event to an events table. It implements
// observe.Publisher.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

var _ observe.Publisher = (*Store)(nil)

// Open opens or creates the archive at path. Write failures are counted and
// logged to log since Publish cannot return them.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("archive path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		channel TEXT NOT NULL,
		kind TEXT NOT NULL,
		node TEXT NOT NULL,
		alias TEXT NOT NULL,
		property TEXT NOT NULL,
		path TEXT NOT NULL,
		depth INTEGER NOT NULL,
		time_unix_ms INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create events table: %w", err)
	}
	return &Store{db: db, path: path, log: log}, nil
}

// Path returns the database file.
func (s *Store) Path() string { return s.path }

func (s *Store) Publish(ev types.Event) {
	if err := s.Append(ev); err != nil {
		writeErrorsTotal.Inc()
		s.log.Warn().Err(err).Str("event_id", ev.ID).Msg("archive write failed")
	}
}

// Append writes ev. An event already stored under the same id is kept.
func (s *Store) Append(ev types.Event) error {
	path, err := json.Marshal(ev.Path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`INSERT OR IGNORE INTO events
		(id, channel, kind, node, alias, property, path, depth, time_unix_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Channel, ev.Kind, ev.Node, ev.Alias, ev.Property, string(path), ev.Depth, ev.Time)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Since returns archived events with an id greater than after, oldest first,
// at most limit of them (limit <= 0 means all).
func (s *Store) Since(after string, limit int) (events []types.Event, retErr error) {
	cursor, err := observe.ParseCursor(after)
	if err != nil {
		return nil, err
	}
	// ids are stored in canonical upper-case form
	from := ""
	if after != "" {
		from = cursor.String()
	}
	if limit <= 0 {
		limit = -1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT id, channel, kind, node, alias, property, path, depth, time_unix_ms
		FROM events WHERE id > ? ORDER BY id LIMIT ?`, from, limit)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()
	events = []types.Event{}
	for rows.Next() {
		var ev types.Event
		var path string
		if err := rows.Scan(&ev.ID, &ev.Channel, &ev.Kind, &ev.Node, &ev.Alias, &ev.Property, &path, &ev.Depth, &ev.Time); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if err := json.Unmarshal([]byte(path), &ev.Path); err != nil {
			return nil, fmt.Errorf("decode path: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Count returns the number of archived events.
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }
