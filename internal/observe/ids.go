package observe

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDSource hands out strictly increasing ULIDs, also within one millisecond.
type IDSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func NewIDSource() *IDSource {
	return &IDSource{entropy: ulid.Monotonic(rand.Reader, 0), now: time.Now}
}

// Next returns a fresh id and the time it encodes.
func (s *IDSource) Next() (ulid.ULID, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.now()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy), t
}
