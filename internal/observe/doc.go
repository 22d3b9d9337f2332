// Package observe consumes the events a session collects from its game and
// fans them out: an in-memory journal with sortable ids, structured debug
// logging, Prometheus counters and a hub of live subscribers with optional
// filter expressions.
//
// Every consumer implements Publisher. Publish runs synchronously on the
// goroutine applying the edit, so implementations must not block.
package observe
