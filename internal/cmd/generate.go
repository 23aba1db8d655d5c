package cmd

import (
	"fmt"
	"log/slog"

	"github.com/eovim/apigen/internal/codegen/common"
	"github.com/eovim/apigen/internal/codegen/generator"
	"github.com/eovim/apigen/internal/codegen/meta"
	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/schema"
	"github.com/eovim/apigen/internal/codegen/tables"
	"github.com/eovim/apigen/internal/codegen/transform"
)

type Generate struct {
	API          string   `arg:"" name:"api-file" help:"API description file (YAML or JSON)" type:"path"`
	OutputDir    string   `short:"o" help:"Directory receiving generated files" default:"." env:"APIGEN_OUTPUT_DIR"`
	TemplateDir  string   `short:"I" help:"Render every *.tmpl file in this directory instead of the built-in templates" env:"APIGEN_TEMPLATE_DIR"`
	Template     []string `help:"Template file to render; pair each with --output" sep:"none"`
	Output       []string `help:"Output file for the matching --template" sep:"none"`
	UnknownTypes string   `help:"What to do with types missing from the registry: warn or error" default:"warn" enum:"warn,error" env:"APIGEN_UNKNOWN_TYPES"`
	Threshold    int      `help:"Drop functions deprecated at or before this API level" default:"2" env:"APIGEN_DEPRECATION_THRESHOLD"`
	Manifest     string   `help:"Write a YAML manifest of outputs and their digests" env:"APIGEN_MANIFEST"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	// Template/output pairing is checked before the API file is touched.
	var explicit []generator.Job
	if len(c.Template) > 0 || len(c.Output) > 0 {
		jobs, err := generator.ExplicitJobs(c.Template, c.Output)
		if err != nil {
			return err
		}
		explicit = jobs
	}

	policy, err := transform.ParsePolicy(c.UnknownTypes)
	if err != nil {
		return err
	}

	logger.Info("Starting apigen code generation", "api", c.API, "output", c.OutputDir)

	model, err := schema.Load(c.API)
	if err != nil {
		return err
	}
	logger.Debug("Parsed API file", "functions", len(model.Functions), "events", len(model.Events))

	reg := registry.New()
	res, err := transform.Apply(reg, model, transform.Options{
		Threshold: c.Threshold,
		Policy:    policy,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	md := meta.New(reg, res.Model, tables.Build(reg))
	if md.Generator, err = common.Banner(); err != nil {
		return err
	}
	md.Source = c.API

	var opts []generator.Option
	if c.Manifest != "" {
		opts = append(opts, generator.WithManifest(c.Manifest))
	}
	gen := generator.New(c.OutputDir, logger, opts...)

	jobs := explicit
	switch {
	case jobs != nil:
	case c.TemplateDir != "":
		if jobs, err = gen.DirJobs(c.TemplateDir); err != nil {
			return err
		}
		if len(jobs) == 0 {
			return fmt.Errorf("no %s files in %s", generator.TemplateExt, c.TemplateDir)
		}
	default:
		if jobs, err = gen.EmbeddedJobs(); err != nil {
			return err
		}
	}

	if err := gen.Render(md, jobs); err != nil {
		return err
	}

	logger.Info("Code generation complete",
		"functions", len(md.Functions),
		"events", len(md.Events),
		"dropped", len(res.Dropped),
		"warnings", len(res.Warnings),
		"files", len(jobs),
	)
	return nil
}
