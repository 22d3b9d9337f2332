package types

// Op is one edit applied to the session's game. Target and Ref name nodes by
// alias or id.
type Op struct {
	// Operation name: set, new, create, add, own, remove, score, unscore,
	// place, take, link, use or clear.
	// example: set
	Op string `json:"op" yaml:"op" toml:"op" example:"set"`
	// Node the operation applies to. Defaults to the game for clear.
	// example: game
	Target string `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty" example:"game"`
	// Property assigned by set, or the reference changed by link (target|artifact).
	// example: Title
	Property string `json:"property,omitempty" yaml:"property,omitempty" toml:"property,omitempty" example:"Title"`
	// Value assigned by set, or points stored by score.
	Value any `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	// Slot edited by create, add, own and remove.
	// example: Chapters
	Slot string `json:"slot,omitempty" yaml:"slot,omitempty" toml:"slot,omitempty" example:"Chapters"`
	// Second node involved in the edit.
	// example: intro
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty" toml:"ref,omitempty" example:"intro"`
	// Entity kind built by new.
	// example: feature
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty" example:"feature"`
	// Alias registered for the node built by new or create.
	// example: intro
	As string `json:"as,omitempty" yaml:"as,omitempty" toml:"as,omitempty" example:"intro"`
}

// OpResult reports the outcome of one applied Op.
type OpResult struct {
	// Operation name echoed from the request.
	Op string `json:"op"`
	// Node built by new or create, or the chapter reached by use.
	Node string `json:"node,omitempty"`
	// Alias registered for Node, if any.
	Alias string `json:"alias,omitempty"`
	// Whether the model changed.
	Changed bool `json:"changed"`
	// Events fired while applying the op, in delivery order.
	Events []Event `json:"events"`
}

// OpsRequest is the body of POST /ops.
type OpsRequest struct {
	Ops []Op `json:"ops"`
}

// OpsResponse is returned by POST /ops and POST /scripts/{name}/run.
type OpsResponse struct {
	Results []OpResult `json:"results"`
	// Index of the failing op when Error is set.
	Failed *int `json:"failed,omitempty"`
	// Error message of the failing op.
	Error string `json:"error,omitempty"`
	// HTTP status code when Error is set.
	Code int `json:"code,omitempty"`
}

// EventsResponse is returned by GET /events.
type EventsResponse struct {
	Events []Event `json:"events"`
	// Id to pass as after to continue reading.
	// example: 01HZY3K6ZC6J9V5M0N1QF7R2TB
	Next string `json:"next,omitempty" example:"01HZY3K6ZC6J9V5M0N1QF7R2TB"`
}

// ScriptInfo describes a script available under the configured directory.
type ScriptInfo struct {
	// example: opening
	Name string `json:"name" example:"opening"`
	// example: /srv/nyx/scripts/opening.yaml
	Path string `json:"path" example:"/srv/nyx/scripts/opening.yaml"`
	// example: 12
	Ops int `json:"ops" example:"12"`
}

// ScriptsResponse is returned by GET /scripts.
type ScriptsResponse struct {
	Scripts []ScriptInfo `json:"scripts"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
