package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/schema"
	"github.com/eovim/apigen/internal/codegen/transform"
)

// Inspect dumps the enriched model without rendering anything.
type Inspect struct {
	API       string `arg:"" name:"api-file" help:"API description file (YAML or JSON)" type:"path"`
	Format    string `help:"Output format" enum:"yaml,json" default:"yaml"`
	Threshold int    `help:"Drop functions deprecated at or before this API level" default:"2" env:"APIGEN_DEPRECATION_THRESHOLD"`

	out io.Writer `kong:"-"`
}

type inspection struct {
	Source    string               `json:"source" yaml:"source"`
	Functions []transform.Function `json:"functions" yaml:"functions"`
	Events    []transform.Event    `json:"events" yaml:"events"`
	Dropped   []string             `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Warnings  []transform.Warning  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Run is called by Kong when the inspect command is executed.
func (c *Inspect) Run(logger *slog.Logger) error {
	model, err := schema.Load(c.API)
	if err != nil {
		return err
	}
	// Unknown types are reported in the dump rather than logged.
	res, err := transform.Apply(registry.New(), model, transform.Options{
		Threshold: c.Threshold,
		Policy:    transform.PolicyWarn,
	})
	if err != nil {
		return err
	}
	logger.Debug("Inspecting API file", "api", c.API, "warnings", len(res.Warnings))

	doc := inspection{
		Source:    c.API,
		Functions: res.Model.Functions,
		Events:    res.Model.Events,
		Dropped:   res.Dropped,
		Warnings:  res.Warnings,
	}

	w := c.out
	if w == nil {
		w = os.Stdout
	}
	if c.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
