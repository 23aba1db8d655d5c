package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eovim/apigen/internal/config"
)

func newParser(t *testing.T, cli *config.CLI, opts ...kong.Option) *kong.Kong {
	t.Helper()
	opts = append([]kong.Option{kong.Name("apigen"), kong.Exit(func(int) { t.Fatal("unexpected exit") })}, opts...)
	parser, err := kong.New(cli, opts...)
	require.NoError(t, err)
	return parser
}

func TestParseGenerate(t *testing.T) {
	var cli config.CLI
	parser := newParser(t, &cli)

	ctx, err := parser.Parse([]string{
		"--log.level=debug",
		"generate", "api.yaml",
		"-o", "out",
		"--template", "a.tmpl", "--output", "a.h",
		"--template", "b.tmpl", "--output", "b.c",
		"--unknown-types=error",
	})
	require.NoError(t, err)
	assert.Equal(t, "generate <api-file>", ctx.Command())
	assert.Equal(t, "debug", cli.Log.Level)
	assert.Equal(t, "out", cli.Generate.OutputDir)
	assert.Equal(t, []string{"a.tmpl", "b.tmpl"}, cli.Generate.Template)
	assert.Equal(t, []string{"a.h", "b.c"}, cli.Generate.Output)
	assert.Equal(t, "error", cli.Generate.UnknownTypes)
	assert.Equal(t, 2, cli.Generate.Threshold)
	assert.True(t, filepath.IsAbs(cli.Generate.API))
}

func TestParseRejectsBadPolicy(t *testing.T) {
	var cli config.CLI
	parser := newParser(t, &cli)
	_, err := parser.Parse([]string{"generate", "api.yaml", "--unknown-types=ignore"})
	assert.Error(t, err)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APIGEN_OUTPUT_DIR", "from-env")
	t.Setenv("APIGEN_LOG_LEVEL", "warn")

	var cli config.CLI
	parser := newParser(t, &cli)
	_, err := parser.Parse([]string{"generate", "api.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cli.Generate.OutputDir)
	assert.Equal(t, "warn", cli.Log.Level)
}

func TestJSONConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apigen.json")
	body := `{"output_dir": "json-out", "unknown_types": "error", "log": {"level": "debug"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	var cli config.CLI
	parser := newParser(t, &cli, kong.Configuration(kong.JSON, path))
	_, err := parser.Parse([]string{"generate", "api.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "json-out", cli.Generate.OutputDir)
	assert.Equal(t, "error", cli.Generate.UnknownTypes)
	assert.Equal(t, "debug", cli.Log.Level)
}

func TestMissingConfigFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	var cli config.CLI
	parser := newParser(t, &cli,
		kong.Configuration(kong.JSON, filepath.Join(dir, "apigen.json")),
		kong.Configuration(kongyaml.Loader, filepath.Join(dir, "apigen.yaml")),
		kong.Configuration(kongtoml.Loader, filepath.Join(dir, "apigen.toml")),
	)
	_, err := parser.Parse([]string{"generate", "api.yaml"})
	require.NoError(t, err)
	assert.Equal(t, ".", cli.Generate.OutputDir)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apigen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output_dir": "cfg-out"}`), 0o644))

	var cli config.CLI
	parser := newParser(t, &cli, kong.Configuration(kong.JSON, path))
	_, err := parser.Parse([]string{"generate", "api.yaml", "-o", "flag-out"})
	require.NoError(t, err)
	assert.Equal(t, "flag-out", cli.Generate.OutputDir)
}

func TestParseSubcommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"registry", "--format=markdown"}, want: "registry"},
		{args: []string{"inspect", "api.yaml", "--format=json"}, want: "inspect <api-file>"},
		{args: []string{"config", "init", "--format=toml"}, want: "config init"},
		{args: []string{"version"}, want: "version"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var cli config.CLI
			ctx, err := newParser(t, &cli).Parse(tt.args)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(ctx.Command(), tt.want), ctx.Command())
		})
	}
}
