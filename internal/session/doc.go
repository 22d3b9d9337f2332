// Package session owns one story game and applies edit operations to it one
// at a time. It indexes the game's nodes by id and alias, turns the local
// changes of every indexed node and the bubble events reaching the game into
// journaled events, and fans them out to the configured publishers and live
// subscribers.
//
//   - session.go: Session type, constructor, indexing, event capture.
//   - config.go: Config and package defaults.
//   - apply.go: Apply/ApplyAll and the operation handlers.
//   - tree.go: Tree snapshots.
//   - errors.go: error types and helpers (IsNodeNotFound, IsUnknownOp, ...).
package session
