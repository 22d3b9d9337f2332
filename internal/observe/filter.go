package observe

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"nyxventure/pkg/types"
)

// filterEnv is the set of names a filter expression can use.
type filterEnv struct {
	Channel  string   `expr:"channel"`
	Kind     string   `expr:"kind"`
	Node     string   `expr:"node"`
	Alias    string   `expr:"alias"`
	Property string   `expr:"property"`
	Depth    int      `expr:"depth"`
	Path     []string `expr:"path"`
}

// Filter selects events by a boolean expression such as
//
//	channel == "bubble" && kind in ["link", "chapter"] && depth >= 2
//
// A nil Filter matches every event.
type Filter struct {
	src     string
	program *vm.Program
}

// CompileFilter parses src. Blank input yields a nil Filter.
func CompileFilter(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, invalidFilterError{src: src, err: err}
	}
	return &Filter{src: src, program: program}, nil
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.src
}

// Match reports whether ev satisfies the filter. Evaluation errors count as
// no match.
func (f *Filter) Match(ev types.Event) bool {
	if f == nil {
		return true
	}
	out, err := expr.Run(f.program, filterEnv{
		Channel:  ev.Channel,
		Kind:     ev.Kind,
		Node:     ev.Node,
		Alias:    ev.Alias,
		Property: ev.Property,
		Depth:    ev.Depth,
		Path:     ev.Path,
	})
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}
