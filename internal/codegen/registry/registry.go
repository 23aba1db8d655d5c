package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a protocol type has no registry entry.
var ErrUnknownType = errors.New("unknown protocol type")

// UnknownTypeError carries the offending protocol type name.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownType, e.Name)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// Registry resolves protocol type names to their bindings.
// A Registry is immutable once returned by New.
type Registry struct {
	byName map[string]Type
}

// New assembles the registry from the static binding table.
func New() *Registry {
	r := &Registry{byName: make(map[string]Type, typeCount)}
	for t := Type(0); t < typeCount; t++ {
		b := bindings[t]
		if _, dup := r.byName[b.Name]; dup {
			panic(fmt.Sprintf("registry: duplicate protocol type %q", b.Name))
		}
		r.byName[b.Name] = t
	}
	return r
}

// Lookup returns the binding of a protocol type name. The name is
// canonicalized first, so "ArrayOf( Integer ,2 )" finds Position.
func (r *Registry) Lookup(name string) (Binding, error) {
	t, ok := r.byName[Canonical(name)]
	if !ok {
		return Binding{}, &UnknownTypeError{Name: name}
	}
	return r.Binding(t), nil
}

// Binding returns the binding of an enumerated type.
func (r *Registry) Binding(t Type) Binding {
	if !t.Valid() {
		return Binding{}
	}
	b := bindings[t]
	b.Type = t
	return b
}

// Types lists every registered type in declaration order.
func (r *Registry) Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Bindings lists every registered binding in declaration order.
func (r *Registry) Bindings() []Binding {
	out := make([]Binding, 0, typeCount)
	for _, t := range r.Types() {
		out = append(out, r.Binding(t))
	}
	return out
}

// Len is the number of registered protocol types.
func (r *Registry) Len() int { return int(typeCount) }

// Canonical normalizes the spelling of a protocol type name.
// Whitespace around the name and around ArrayOf arguments is dropped and
// arguments are re-joined with ", ".
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	const prefix = "ArrayOf("
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ")") {
		return name
	}
	parts := splitArgs(name[len(prefix) : len(name)-1])
	for i, p := range parts {
		parts[i] = Canonical(p)
	}
	return prefix + strings.Join(parts, ", ") + ")"
}

// splitArgs splits on commas that are not nested in parentheses.
func splitArgs(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
