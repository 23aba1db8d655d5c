package generator

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/crypto/blake2b"

	"github.com/eovim/apigen/internal/codegen/meta"
)

type Generator struct {
	outputDir    string
	logger       *slog.Logger
	manifestPath string
}

type Option func(*Generator)

// WithManifest records every rendered output and its digest in a YAML file.
func WithManifest(path string) Option {
	return func(g *Generator) { g.manifestPath = path }
}

func New(outputDir string, logger *slog.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &Generator{
		outputDir: outputDir,
		logger:    logger,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Render executes every job against md, writing each output as soon as it
// is rendered. The first failure stops the run; outputs written before it
// are left in place.
func (g *Generator) Render(md *meta.Metadata, jobs []Job) error {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return fmt.Errorf("%w: create output directory: %v", ErrOutputWrite, err)
	}

	entries := make([]ManifestEntry, 0, len(jobs))
	for _, job := range jobs {
		g.logger.Info("Generating", "template", job.Name(), "output", job.Output)

		entry, err := g.renderJob(md, job)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	if g.manifestPath != "" {
		if err := writeManifest(g.manifestPath, md, entries); err != nil {
			return err
		}
		g.logger.Info("Wrote manifest", "file", g.manifestPath, "outputs", len(entries))
	}
	return nil
}

func (g *Generator) renderJob(md *meta.Metadata, job Job) (ManifestEntry, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := Execute(buf, job.FS, job.Template, md); err != nil {
		return ManifestEntry{}, err
	}

	sum := blake2b.Sum256(buf.B)
	changed, err := writeIfChanged(job.Output, buf.B, sum)
	if err != nil {
		return ManifestEntry{}, err
	}
	if !changed {
		g.logger.Debug("Output unchanged", "output", job.Output)
	}
	return ManifestEntry{
		Template: job.Name(),
		Output:   job.Output,
		Digest:   fmt.Sprintf("%x", sum),
		Changed:  changed,
	}, nil
}

// Execute parses one template from fsys and renders it into w. Any
// reference to a field, key or function absent from the context fails with
// ErrUndefinedReference.
func Execute(w io.Writer, fsys fs.FS, name string, md *meta.Metadata) error {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read template %s: %w", name, err)
	}
	tmpl, err := template.New(path.Base(name)).
		Option("missingkey=error").
		Funcs(tplFuncs()).
		Parse(string(src))
	if err != nil {
		return classify(name, err)
	}
	if err := tmpl.Execute(w, md); err != nil {
		return classify(name, err)
	}
	return nil
}

// writeIfChanged leaves files whose content already matches untouched so
// build systems do not see a new mtime.
func writeIfChanged(path string, data []byte, sum [blake2b.Size256]byte) (bool, error) {
	if old, err := os.ReadFile(path); err == nil && blake2b.Sum256(old) == sum {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("%w %s: %v", ErrOutputWrite, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("%w %s: %v", ErrOutputWrite, path, err)
	}
	return true, nil
}
