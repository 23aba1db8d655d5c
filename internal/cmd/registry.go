package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"

	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/tables"
)

// Registry prints the protocol type registry.
type Registry struct {
	Format string `help:"Output format; table picks a boxed table on a terminal and markdown otherwise" enum:"table,markdown,yaml,json" default:"table" env:"APIGEN_REGISTRY_FORMAT"`

	out io.Writer `kong:"-"`
}

// Run is called by Kong when the registry command is executed.
func (c *Registry) Run(logger *slog.Logger) error {
	reg := registry.New()
	w := c.out
	if w == nil {
		w = os.Stdout
	}
	logger.Debug("Listing registry", "types", reg.Len(), "format", c.Format)

	switch c.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tables.Build(reg)); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tables.Build(reg))
	case "markdown":
		return renderRegistry(w, reg, true)
	default:
		return renderRegistry(w, reg, !isTerminal(w))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func renderRegistry(w io.Writer, reg *registry.Registry, markdown bool) error {
	var opts []tablewriter.Option
	if markdown {
		opts = append(opts, tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})))
	}
	table := tablewriter.NewTable(w, opts...)
	table.Header([]string{"Protocol type", "Native", "Encode", "Decode", "Dispatch"})

	rows := make([][]string, 0, reg.Len())
	for _, b := range reg.Bindings() {
		rows = append(rows, []string{b.Name, b.Native, b.Encode.String(), b.Decode.String(), b.Dispatch.String()})
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("render registry: %w", err)
	}
	return table.Render()
}
