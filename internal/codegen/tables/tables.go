// Package tables projects the type registry into the flat symbol lookups
// templates use to emit exhaustive encode/decode/dispatch switches.
package tables

import (
	"sort"

	"github.com/eovim/apigen/internal/codegen/registry"
)

// Tables maps every registered protocol type name to a generated symbol.
// registry.None entries are kept as-is.
type Tables struct {
	Encoders    map[string]registry.Symbol `json:"encoders" yaml:"encoders"`
	Decoders    map[string]registry.Symbol `json:"decoders" yaml:"decoders"`
	Dispatchers map[string]registry.Symbol `json:"dispatchers" yaml:"dispatchers"`
}

// Build derives the three tables from reg.
func Build(reg *registry.Registry) Tables {
	n := reg.Len()
	t := Tables{
		Encoders:    make(map[string]registry.Symbol, n),
		Decoders:    make(map[string]registry.Symbol, n),
		Dispatchers: make(map[string]registry.Symbol, n),
	}
	for _, b := range reg.Bindings() {
		t.Encoders[b.Name] = b.Encode
		t.Decoders[b.Name] = b.Decode
		t.Dispatchers[b.Name] = b.Dispatch
	}
	return t
}

// Names returns the protocol type names in sorted order, for deterministic
// iteration in templates.
func (t Tables) Names() []string {
	names := make([]string, 0, len(t.Encoders))
	for name := range t.Encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
