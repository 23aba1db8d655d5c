package transform

import (
	"fmt"
	"strings"

	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/schema"
)

// EntityKind tells functions and events apart in diagnostics.
type EntityKind string

const (
	KindFunction EntityKind = "function"
	KindEvent    EntityKind = "event"
)

// Param is a parameter (or return value) after type resolution.
type Param struct {
	Name string `json:"name" yaml:"name"`
	// Type is the native representation, or the protocol name verbatim when
	// the protocol type is unknown.
	Type     string           `json:"type" yaml:"type"`
	Protocol string           `json:"protocol" yaml:"protocol"`
	Binding  registry.Binding `json:"binding" yaml:"binding"`
	Resolved bool             `json:"resolved" yaml:"resolved"`
}

// Function is a schema function with its derived generation fields.
type Function struct {
	schema.Function `yaml:",inline"`

	RequestTag       string  `json:"request_tag" yaml:"request_tag"`
	NativeReturnType string  `json:"native_return_type" yaml:"native_return_type"`
	Return           Param   `json:"return" yaml:"return"`
	NativeParameters []Param `json:"native_parameters" yaml:"native_parameters"`
	ParameterCount   int     `json:"parameter_count" yaml:"parameter_count"`
}

// Event is a schema event with its derived generation fields.
type Event struct {
	schema.Event `yaml:",inline"`

	EventTag         string  `json:"event_tag" yaml:"event_tag"`
	HandlerName      string  `json:"handler_name" yaml:"handler_name"`
	NativeParameters []Param `json:"native_parameters" yaml:"native_parameters"`
	ParameterCount   int     `json:"parameter_count" yaml:"parameter_count"`
}

// Model is the enriched, read-only API model handed to rendering.
type Model struct {
	Functions []Function `json:"functions" yaml:"functions"`
	Events    []Event    `json:"events" yaml:"events"`
}

// Warning records one occurrence of an unresolved protocol type.
type Warning struct {
	Kind   EntityKind `json:"kind" yaml:"kind"`
	Entity string     `json:"entity" yaml:"entity"`
	Field  string     `json:"field" yaml:"field"`
	Type   string     `json:"type" yaml:"type"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s: %q is not in the conversion table", w.Kind, w.Entity, w.Field, w.Type)
}

// Policy decides what an unknown protocol type does to a run.
type Policy int

const (
	// PolicyWarn logs the occurrence and uses the protocol name as native type.
	PolicyWarn Policy = iota
	// PolicyError fails the run.
	PolicyError
)

func (p Policy) String() string {
	switch p {
	case PolicyError:
		return "error"
	default:
		return "warn"
	}
}

// ParsePolicy accepts "warn" (or "") and "error".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return PolicyWarn, nil
	case "error":
		return PolicyError, nil
	default:
		return PolicyWarn, fmt.Errorf("unknown type policy %q (expected warn or error)", s)
	}
}
