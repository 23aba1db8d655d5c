package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/eovim/apigen/internal/codegen/meta"
)

// Manifest lists what one run produced. Build systems can compare digests
// instead of timestamps to decide whether dependents need rebuilding.
type Manifest struct {
	Generator    string          `yaml:"generator"`
	Source       string          `yaml:"source,omitempty"`
	SourceDigest string          `yaml:"source_digest,omitempty"`
	Outputs      []ManifestEntry `yaml:"outputs"`
}

type ManifestEntry struct {
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
	Digest   string `yaml:"blake2b_256"`
	Changed  bool   `yaml:"changed"`
}

func writeManifest(path string, md *meta.Metadata, entries []ManifestEntry) error {
	m := Manifest{
		Generator: md.Generator,
		Source:    md.Source,
		Outputs:   entries,
	}
	if md.Source != "" {
		src, err := os.ReadFile(md.Source)
		if err != nil {
			return fmt.Errorf("digest API file: %w", err)
		}
		m.SourceDigest = fmt.Sprintf("%x", blake2b.Sum256(src))
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w %s: %v", ErrOutputWrite, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by a previous run.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return &m, nil
}
