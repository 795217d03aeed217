// SPDX-License-Identifier: MIT

package poly

import (
	"sort"

	"github.com/katalvlaran/symlu/field"
)

// Binding is the environment entry of one symbol.
// Resolved=false means the symbol is known to exist but must stay symbolic.
type Binding struct {
	Value    field.Value
	Resolved bool
}

// Env maps symbol names to bindings. A nil Env substitutes nothing.
type Env map[string]Binding

// Bind records a resolved value for name; Eval substitutes it.
func (e Env) Bind(name string, v field.Value) { e[name] = Binding{Value: v, Resolved: true} }

// Declare records name with a placeholder value that Eval will not substitute.
func (e Env) Declare(name string, v field.Value) { e[name] = Binding{Value: v} }

// Lookup returns the value of name only when it is resolved.
func (e Env) Lookup(name string) (field.Value, bool) {
	b, ok := e[name]
	if !ok || !b.Resolved {
		return nil, false
	}

	return b.Value, true
}

// Clone returns an independent copy. Values are immutable and shared.
func (e Env) Clone() Env {
	out := make(Env, len(e))
	for k, v := range e {
		out[k] = v
	}

	return out
}

// Pending returns the names declared but not yet resolved, sorted.
func (e Env) Pending() []string {
	var out []string
	for k, v := range e {
		if !v.Resolved {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}
