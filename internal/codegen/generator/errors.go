package generator

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrUndefinedReference is returned when a template names a field, key or
	// function that the rendering context does not provide.
	ErrUndefinedReference = errors.New("undefined template reference")
	// ErrOutputWrite is returned when a rendered file cannot be written.
	ErrOutputWrite = errors.New("write generated file")
	// ErrConfigurationMismatch is returned when templates and outputs cannot
	// be paired one to one.
	ErrConfigurationMismatch = errors.New("template/output mismatch")
)

// UndefinedReferenceError names the missing field and the template using it.
type UndefinedReferenceError struct {
	Template string
	Field    string
	Err      error
}

func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", e.Template, ErrUndefinedReference, e.Field, e.Err)
}

func (e *UndefinedReferenceError) Unwrap() []error { return []error{ErrUndefinedReference, e.Err} }

var undefinedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`can't evaluate field (\w+)`),
	regexp.MustCompile(`map has no entry for key "([^"]*)"`),
	regexp.MustCompile(`function "([^"]+)" not defined`),
}

// classify turns text/template failures about missing names into
// UndefinedReferenceError and wraps everything else with the template name.
func classify(tmpl string, err error) error {
	msg := err.Error()
	for _, re := range undefinedPatterns {
		if m := re.FindStringSubmatch(msg); m != nil {
			return &UndefinedReferenceError{Template: tmpl, Field: m[1], Err: err}
		}
	}
	return fmt.Errorf("render %s: %w", tmpl, err)
}
