package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrMalformedSchema is returned when a document cannot be turned into a Model.
var ErrMalformedSchema = errors.New("malformed API schema")

//go:embed api.schema.json
var apiSchemaJSON string

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(apiSchemaJSON))
})

type document struct {
	Functions []rawFunction `yaml:"functions"`
	UIEvents  []rawEvent    `yaml:"ui_events"`
	Events    []rawEvent    `yaml:"events"`
}

type rawFunction struct {
	Name            string        `yaml:"name"`
	Parameters      parameterList `yaml:"parameters"`
	ReturnType      string        `yaml:"return_type"`
	DeprecatedSince *int          `yaml:"deprecated_since"`
}

type rawEvent struct {
	Name       string        `yaml:"name"`
	Parameters parameterList `yaml:"parameters"`
}

// parameterList accepts either a sequence of [type, name] pairs or the
// scalar "void".
type parameterList struct {
	params []Parameter
	void   bool
}

func (p *parameterList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		switch {
		case n.Tag == "!!null":
			return nil
		case n.Value == "void":
			p.void = true
			return nil
		}
		return fmt.Errorf("line %d: parameters must be a list or \"void\", got %q", n.Line, n.Value)
	}
	var pairs [][]string
	if err := n.Decode(&pairs); err != nil {
		return err
	}
	p.params = make([]Parameter, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return fmt.Errorf("line %d: parameter %d must be a [type, name] pair", n.Line, i)
		}
		p.params = append(p.params, Parameter{Type: pair[0], Name: pair[1]})
	}
	return nil
}

// Load reads and parses the API description at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read API file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML (or JSON) API description. The structure is first
// checked against the embedded JSON schema so every shape problem is reported
// at once; all failures wrap ErrMalformedSchema.
func Parse(data []byte) (*Model, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchema, err)
	}
	if err := validate(generic); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchema, err)
	}

	events := doc.UIEvents
	if events == nil {
		events = doc.Events
	}

	m := &Model{
		Functions: make([]Function, 0, len(doc.Functions)),
		Events:    make([]Event, 0, len(events)),
	}
	for _, rf := range doc.Functions {
		m.Functions = append(m.Functions, Function{
			Name:            rf.Name,
			Parameters:      rf.Parameters.params,
			VoidParameters:  rf.Parameters.void,
			ReturnType:      rf.ReturnType,
			DeprecatedSince: rf.DeprecatedSince,
		})
	}
	for _, re := range events {
		m.Events = append(m.Events, Event{
			Name:       re.Name,
			Parameters: re.Parameters.params,
		})
	}
	return m, nil
}

func validate(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile API JSON schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSchema, err)
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrMalformedSchema, strings.Join(problems, "; "))
}
