// Package node provides the observable object-graph primitives the story model
// is built on. It is structured into small files by concern:
//
//   - base.go: Base (change flags, local and bubble channels, Init), SetProperty.
//   - edges.go: AttachChild/DetachChild wiring between an owner and its children.
//   - event.go: BubbleEvent and the handler signatures.
//   - registry.go: insertion-ordered subscriber registries addressed by Handle.
//   - slots.go: owned slots (Ref, List) declared by container entities.
//   - refs.go: non-owned reference containers (Table, Set).
//   - clear.go: ClearAll, the generic recursive flag reset over owned slots.
//
// Every entity embeds a Base and calls Init from its constructor. Two channels
// are exposed per node: the local channel reports "(node, property) changed"
// for that node's own properties, and the bubble channel carries a BubbleEvent
// for every field change at or below the node. Owners subscribe to their
// children's bubble channel with AttachChild; observers usually subscribe to
// the root.
//
// Delivery is synchronous and depth-first: when a setter returns, every local
// and bubble subscriber up the tree has already run. The package does no
// locking. Callers sharing a tree across goroutines must serialize access, and
// a callback must not add or remove subscriptions on the registry that is
// currently invoking it.
package node
