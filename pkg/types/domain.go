package types

// Event channels.
const (
	ChannelLocal  = "local"
	ChannelBubble = "bubble"
)

// Event is one notification observed on the game: a local change of an
// indexed node or a bubble event reaching the game.
type Event struct {
	// Monotonic id, sortable by time.
	// example: 01HZY3K6ZC6J9V5M0N1QF7R2TB
	ID string `json:"id" example:"01HZY3K6ZC6J9V5M0N1QF7R2TB"`
	// local or bubble.
	// example: bubble
	Channel string `json:"channel" example:"bubble"`
	// Kind of the node whose property changed.
	// example: link
	Kind string `json:"kind" example:"link"`
	// Id of the node whose property changed, or of the collection owner.
	Node string `json:"node"`
	// Alias of Node, if any.
	Alias string `json:"alias,omitempty"`
	// Changed property or collection name.
	// example: Text
	Property string `json:"property" example:"Text"`
	// Node ids from the game down to Node. Bubble events only.
	Path []string `json:"path,omitempty"`
	// Number of hops from the game to Node. Bubble events only.
	Depth int `json:"depth"`
	// Observation time in unix milliseconds.
	Time int64 `json:"time_unix_ms"`
}

// Field is a scalar property and its value.
type Field struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Slot lists the nodes held in one owned slot of a TreeNode.
type Slot struct {
	Name  string     `json:"name"`
	Nodes []TreeNode `json:"nodes"`
}

// Reference is a non-owned association from a TreeNode.
type Reference struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	Alias  string `json:"alias,omitempty"`
	Value  any    `json:"value,omitempty"`
}

// TreeNode is a snapshot of one node and its owned subtree, returned by GET /tree.
type TreeNode struct {
	ID            string `json:"id"`
	Alias         string `json:"alias,omitempty"`
	Kind          string `json:"kind"`
	Label         string `json:"label,omitempty"`
	ObjectChanged bool   `json:"object_changed"`
	ModelChanged  bool   `json:"model_changed"`
	// Whether the node is attached to the owner it is listed under.
	Owned      bool        `json:"owned"`
	Fields     []Field     `json:"fields"`
	Slots      []Slot      `json:"slots,omitempty"`
	References []Reference `json:"references,omitempty"`
}
