package generator

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eovim/apigen/internal/codegen/templates"
)

// TemplateExt marks template files in a template directory. The output file
// keeps the remaining name: "nvim_api.h.tmpl" renders to "nvim_api.h".
const TemplateExt = ".tmpl"

// Job pairs one template with the file it renders to.
type Job struct {
	FS       fs.FS
	Template string // path inside FS
	Output   string
}

// Name is a short label for logs and errors.
func (j Job) Name() string { return path.Base(j.Template) }

// ExplicitJobs pairs templates[i] with outputs[i]. Output paths are used as
// given. The counts must match.
func ExplicitJobs(templatePaths, outputs []string) ([]Job, error) {
	if len(templatePaths) != len(outputs) {
		return nil, fmt.Errorf("%w: %d template(s) but %d output(s)", ErrConfigurationMismatch, len(templatePaths), len(outputs))
	}
	jobs := make([]Job, 0, len(templatePaths))
	for i, t := range templatePaths {
		jobs = append(jobs, Job{
			FS:       os.DirFS(filepath.Dir(t)),
			Template: filepath.Base(t),
			Output:   outputs[i],
		})
	}
	return jobs, nil
}

// DirJobs finds every *.tmpl file directly inside dir.
func (g *Generator) DirJobs(dir string) ([]Job, error) {
	jobs, err := g.fsJobs(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("scan template dir %s: %w", dir, err)
	}
	return jobs, nil
}

// EmbeddedJobs renders the built-in eovim client templates.
func (g *Generator) EmbeddedJobs() ([]Job, error) {
	return g.fsJobs(templates.FS())
}

func (g *Generator) fsJobs(fsys fs.FS) ([]Job, error) {
	names, err := fs.Glob(fsys, "*"+TemplateExt)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, Job{
			FS:       fsys,
			Template: name,
			Output:   filepath.Join(g.outputDir, strings.TrimSuffix(name, TemplateExt)),
		})
	}
	return jobs, nil
}
