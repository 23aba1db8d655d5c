// Package transform enriches a parsed API model with everything the
// templates need: native types, wire tags, handler names and parameter
// counts. Deprecated functions are dropped on the way.
//
// Apply is a one-shot operation. It reads a schema.Model and returns a new
// Model; the input is never modified, so enriching twice is impossible by
// construction.
package transform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/schema"
)

// DefaultThreshold is the deprecation epoch at or below which functions are
// no longer generated.
const DefaultThreshold = 2

const (
	RequestPrefix = "REQUEST_"
	EventPrefix   = "EVENT_"
	HandlerPrefix = "nvim_event_"
)

// Options tunes a transformation run.
type Options struct {
	Threshold int
	Policy    Policy
	Logger    *slog.Logger
}

// DefaultOptions returns the build defaults: threshold 2, warn on unknown types.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Policy: PolicyWarn}
}

// Result is the outcome of Apply.
type Result struct {
	Model    *Model
	Warnings []Warning
	// Dropped lists deprecated functions that were filtered out.
	Dropped []string
}

type transformer struct {
	reg      *registry.Registry
	opts     Options
	logger   *slog.Logger
	warnings []Warning
	errs     []error
}

// Apply resolves every function and event of in against reg.
func Apply(reg *registry.Registry, in *schema.Model, opts Options) (*Result, error) {
	if reg == nil || in == nil {
		return nil, errors.New("transform: nil registry or model")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &transformer{reg: reg, opts: opts, logger: logger}

	res := &Result{Model: &Model{
		Functions: make([]Function, 0, len(in.Functions)),
		Events:    make([]Event, 0, len(in.Events)),
	}}

	for _, f := range in.Functions {
		if f.Deprecated(opts.Threshold) {
			logger.Debug("Skipping deprecated function", "function", f.Name, "deprecated_since", *f.DeprecatedSince)
			res.Dropped = append(res.Dropped, f.Name)
			continue
		}
		res.Model.Functions = append(res.Model.Functions, t.function(f))
	}
	for _, e := range in.Events {
		res.Model.Events = append(res.Model.Events, t.event(e))
	}

	if len(t.errs) > 0 {
		return nil, errors.Join(t.errs...)
	}
	res.Warnings = t.warnings
	return res, nil
}

func (t *transformer) function(f schema.Function) Function {
	ret := t.resolve(KindFunction, f.Name, "return", f.ReturnType)
	out := Function{
		Function:         f,
		RequestTag:       RequestTag(f.Name),
		NativeReturnType: ret.Type,
		Return:           ret,
		NativeParameters: t.params(KindFunction, f.Name, f.Parameters),
	}
	if !f.VoidParameters {
		out.ParameterCount = len(f.Parameters)
	}
	return out
}

func (t *transformer) event(e schema.Event) Event {
	return Event{
		Event:            e,
		EventTag:         EventTag(e.Name),
		HandlerName:      HandlerName(e.Name),
		NativeParameters: t.params(KindEvent, e.Name, e.Parameters),
		ParameterCount:   len(e.Parameters),
	}
}

func (t *transformer) params(kind EntityKind, entity string, in []schema.Parameter) []Param {
	out := make([]Param, 0, len(in))
	for _, p := range in {
		out = append(out, t.resolve(kind, entity, p.Name, p.Type))
	}
	return out
}

// resolve maps one protocol type occurrence to its native form. Unknown
// types either record a single warning and fall back to the raw name, or
// record an error, depending on the policy.
func (t *transformer) resolve(kind EntityKind, entity, field, protocol string) Param {
	p := Param{Name: field, Protocol: protocol}
	b, err := t.reg.Lookup(protocol)
	if err == nil {
		p.Protocol = b.Name
		p.Type = b.Native
		p.Binding = b
		p.Resolved = true
		return p
	}

	if t.opts.Policy == PolicyError {
		t.errs = append(t.errs, fmt.Errorf("%s %s: %s: %w", kind, entity, field, err))
		return p
	}
	w := Warning{Kind: kind, Entity: entity, Field: field, Type: protocol}
	t.warnings = append(t.warnings, w)
	t.logger.Warn("Type is not in the conversion table", "type", protocol, "kind", string(kind), "entity", entity, "field", field)
	p.Type = protocol
	return p
}

// RequestTag derives the request enumerator of a function.
func RequestTag(name string) string { return RequestPrefix + strings.ToUpper(name) }

// EventTag derives the event enumerator of a UI event.
func EventTag(name string) string { return EventPrefix + strings.ToUpper(name) }

// HandlerName derives the C handler invoked for a UI event.
func HandlerName(name string) string { return HandlerPrefix + name }
