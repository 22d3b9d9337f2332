package node

import "sync/atomic"

// Handle identifies one subscription. The zero Handle is never issued.
type Handle uint64

var handleSeq atomic.Uint64

func nextHandle() Handle { return Handle(handleSeq.Add(1)) }

type entry[F any] struct {
	h  Handle
	fn F
}

// registry keeps subscribers in insertion order. Mutations replace the backing
// slice instead of editing it in place, so a snapshot taken before delivery
// stays intact.
type registry[F any] struct {
	entries []entry[F]
}

func (r *registry[F]) add(fn F) Handle {
	h := nextHandle()
	next := make([]entry[F], len(r.entries), len(r.entries)+1)
	copy(next, r.entries)
	r.entries = append(next, entry[F]{h: h, fn: fn})
	return h
}

func (r *registry[F]) remove(h Handle) bool {
	for i, e := range r.entries {
		if e.h != h {
			continue
		}
		next := make([]entry[F], 0, len(r.entries)-1)
		next = append(next, r.entries[:i]...)
		r.entries = append(next, r.entries[i+1:]...)
		return true
	}
	return false
}

func (r *registry[F]) snapshot() []entry[F] { return r.entries }

func (r *registry[F]) len() int { return len(r.entries) }
