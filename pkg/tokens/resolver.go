// Package tokens resolves symbolic design-token references embedded in
// paint values. A token table is registered once per theme; values that
// name other tokens (strings with a leading "@") are chased to their
// terminal concrete value at registration time.
package tokens

import (
	"sort"
	"strings"

	"tinct/pkg/paint"
)

// RefPrefix marks a string value as a reference to another token.
const RefPrefix = "@"

// Namespace is a two-level token table: category name to token name to
// value. Categories exist only to organize the source table; token names
// are the resolvable keys and are expected to be unique across categories.
type Namespace map[string]map[string]any

// Resolver owns a registered namespace and the flat lookup derived from it.
//
// All methods are synchronous and the resolver performs no internal
// locking: Register replaces shared state, so it must not race with reads.
// Callers that share a Resolver across goroutines need external mutual
// exclusion.
type Resolver struct {
	namespace Namespace
	resolved  map[string]any
}

// NewResolver creates an empty resolver. Every reference is unresolved
// until a namespace is registered.
func NewResolver() *Resolver {
	return &Resolver{
		namespace: Namespace{},
		resolved:  map[string]any{},
	}
}

// Register replaces the stored namespace with a shallow copy of ns and
// rebuilds the flat lookup from scratch. Previous registrations are
// discarded entirely; there is no merging.
func (r *Resolver) Register(ns Namespace) {
	r.namespace = make(Namespace, len(ns))
	for category, toks := range ns {
		r.namespace[category] = toks
	}
	r.resolved = r.flatten()
}

// flatten builds the token-name-to-concrete-value lookup by dereferencing
// every raw value in the namespace. Categories and token names are visited
// in sorted order, so when two categories define the same token name the
// lexicographically last category wins, deterministically.
func (r *Resolver) flatten() map[string]any {
	resolved := make(map[string]any)

	for _, category := range sortedKeys(r.namespace) {
		toks := r.namespace[category]
		for _, name := range sortedKeys(toks) {
			resolved[name] = r.dereference(toks[name], nil)
		}
	}

	return resolved
}

// dereference follows a reference chain through the registered namespace
// until it reaches a concrete value. It consults only the namespace, never
// the lookup under construction, so forward and cross-category references
// resolve regardless of flattening order. A reference whose target does
// not exist is returned verbatim; a chain that loops stops at the first
// revisited name and returns the reference to it.
func (r *Resolver) dereference(v any, seen map[string]bool) any {
	ref, ok := v.(string)
	if !ok || !strings.HasPrefix(ref, RefPrefix) {
		return v
	}

	name := strings.TrimPrefix(ref, RefPrefix)
	if seen[name] {
		// Reference cycle: keep the reference string as-is
		return ref
	}

	for _, category := range sortedKeys(r.namespace) {
		raw, ok := r.namespace[category][name]
		if !ok {
			continue
		}
		if seen == nil {
			seen = make(map[string]bool)
		}
		seen[name] = true
		return r.dereference(raw, seen)
	}

	return ref
}

// Resolve maps a token reference to its concrete value. Anything that is
// not a reference string passes through unchanged, as does a reference to
// a token that was never registered; callers detect the unresolved case by
// comparing output to input.
func (r *Resolver) Resolve(v any) any {
	ref, ok := v.(string)
	if !ok || !strings.HasPrefix(ref, RefPrefix) {
		return v
	}

	if concrete, ok := r.resolved[strings.TrimPrefix(ref, RefPrefix)]; ok {
		return concrete
	}

	return v
}

// ResolveColor resolves token references inside a color value. Plain
// strings go through Resolve. Gradients come back as a new gradient whose
// stop colors are resolved, with stop order and every other field
// preserved; a nil gradient passes through as-is. Patterns and any other
// value pass through untouched, as does any falsy input.
func (r *Resolver) ResolveColor(v any) any {
	if !truthy(v) {
		return v
	}

	switch c := v.(type) {
	case string:
		return r.Resolve(c)

	case *paint.Gradient:
		if c == nil {
			return v
		}
		resolved := c.Clone()
		for i := range resolved.Stops {
			resolved.Stops[i].Color = r.Resolve(resolved.Stops[i].Color)
		}
		return resolved
	}

	return v
}

// PaintStyle returns a copy of the style with Fill and Stroke resolved
// whenever the field is present (non-nil). A nil style stays nil. The
// input is never mutated.
func (r *Resolver) PaintStyle(s *paint.Style) *paint.Style {
	if s == nil {
		return nil
	}

	resolved := s.Clone()
	if resolved.Fill != nil {
		resolved.Fill = r.ResolveColor(resolved.Fill)
	}
	if resolved.Stroke != nil {
		resolved.Stroke = r.ResolveColor(resolved.Stroke)
	}

	return resolved
}

// ResolveStyle is like PaintStyle but only touches Fill and Stroke when
// they are truthy: empty strings, zeros and false are left alone. The two
// entry points deliberately disagree on the "should I touch this field"
// predicate; callers rely on each behavior.
func (r *Resolver) ResolveStyle(s *paint.Style) *paint.Style {
	if s == nil {
		return nil
	}

	resolved := s.Clone()
	if truthy(resolved.Fill) {
		resolved.Fill = r.ResolveColor(resolved.Fill)
	}
	if truthy(resolved.Stroke) {
		resolved.Stroke = r.ResolveColor(resolved.Stroke)
	}

	return resolved
}

// Lookup reports the concrete value registered under a bare token name.
func (r *Resolver) Lookup(name string) (any, bool) {
	v, ok := r.resolved[name]
	return v, ok
}

// Names returns every resolvable token name in sorted order.
func (r *Resolver) Names() []string {
	return sortedKeys(r.resolved)
}

// Tokens returns a copy of the flat resolved lookup.
func (r *Resolver) Tokens() map[string]any {
	out := make(map[string]any, len(r.resolved))
	for name, v := range r.resolved {
		out[name] = v
	}
	return out
}

// truthy reports whether a dynamic value counts as present for the
// ResolveStyle predicate: nil, false, empty strings and numeric zeros
// do not.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	}
	return true
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
