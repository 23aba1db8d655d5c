// Package schema parses API description documents into an ordered model of
// functions and UI events. It performs syntactic checks only: protocol types
// are kept as written and deprecated entries are not filtered here.
package schema

// Parameter is one positional argument of a function or event.
type Parameter struct {
	Type string `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
}

// Function is a callable remote procedure.
type Function struct {
	Name       string      `json:"name" yaml:"name"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
	// VoidParameters is set when the document spells the parameter list as
	// the literal "void".
	VoidParameters  bool   `json:"void_parameters,omitempty" yaml:"void_parameters,omitempty"`
	ReturnType      string `json:"return_type" yaml:"return_type"`
	DeprecatedSince *int   `json:"deprecated_since,omitempty" yaml:"deprecated_since,omitempty"`
}

// Deprecated reports whether the function is retired at the given epoch.
func (f Function) Deprecated(threshold int) bool {
	return f.DeprecatedSince != nil && *f.DeprecatedSince <= threshold
}

// Event is a one-way notification sent by the remote end.
type Event struct {
	Name       string      `json:"name" yaml:"name"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// Model is the parsed API description, in declaration order.
type Model struct {
	Functions []Function `json:"functions" yaml:"functions"`
	Events    []Event    `json:"events" yaml:"events"`
}
