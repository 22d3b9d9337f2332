package session

import (
	"github.com/rs/zerolog"

	"nyxventure/internal/observe"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultJournalSize  = 1024
	defaultStreamBuffer = 64
)

// Config encapsulates all tunables for Session construction.
type Config struct {
	// Title is assigned to the new game. Empty leaves the game untitled and
	// unchanged.
	Title        string
	JournalSize  int
	StreamBuffer int
	// Logger receives op logs and, at debug level, every model event. Nil
	// disables logging.
	Logger *zerolog.Logger
	// Publishers receive every event after the journal and the hub.
	Publishers []observe.Publisher
}

func (c Config) withDefaults() Config {
	if c.JournalSize <= 0 {
		c.JournalSize = defaultJournalSize
	}
	if c.StreamBuffer <= 0 {
		c.StreamBuffer = defaultStreamBuffer
	}
	return c
}
