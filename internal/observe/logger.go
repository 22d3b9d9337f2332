package observe

import (
	"github.com/rs/zerolog"

	"nyxventure/pkg/types"
)

// Logger writes every event at debug level.
type Logger struct {
	log zerolog.Logger
}

func NewLogger(l zerolog.Logger) Logger { return Logger{log: l} }

func (l Logger) Publish(ev types.Event) {
	e := l.log.Debug()
	if !e.Enabled() {
		return
	}
	e = e.Str("event_id", ev.ID).
		Str("channel", ev.Channel).
		Str("kind", ev.Kind).
		Str("node", ev.Node).
		Str("property", ev.Property)
	if ev.Alias != "" {
		e = e.Str("alias", ev.Alias)
	}
	if ev.Channel == types.ChannelBubble {
		e = e.Int("depth", ev.Depth).Strs("path", ev.Path)
	}
	e.Msg("model event")
}
