package meta

import (
	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/tables"
	"github.com/eovim/apigen/internal/codegen/transform"
)

// Metadata is the single context every template is rendered against.
// It is built once per run and never modified afterwards.
type Metadata struct {
	Functions   []transform.Function       `json:"functions" yaml:"functions"`
	Events      []transform.Event          `json:"events" yaml:"events"`
	Encoders    map[string]registry.Symbol `json:"encoders" yaml:"encoders"`
	Decoders    map[string]registry.Symbol `json:"decoders" yaml:"decoders"`
	Dispatchers map[string]registry.Symbol `json:"dispatchers" yaml:"dispatchers"`
	Types       []registry.Binding         `json:"types" yaml:"types"`

	Generator string `json:"generator" yaml:"generator"` // e.g. "apigen 1.2.0"
	Source    string `json:"source" yaml:"source"`       // API file the model came from
}

// New combines the enriched model with the registry tables.
func New(reg *registry.Registry, m *transform.Model, tbl tables.Tables) *Metadata {
	return &Metadata{
		Functions:   m.Functions,
		Events:      m.Events,
		Encoders:    tbl.Encoders,
		Decoders:    tbl.Decoders,
		Dispatchers: tbl.Dispatchers,
		Types:       reg.Bindings(),
	}
}
