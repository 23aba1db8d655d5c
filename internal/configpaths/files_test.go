package configpaths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eovim/apigen/internal/configpaths"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	tests := []struct {
		path   string
		format string
	}{
		{path: "/tmp/a.json", format: "json"},
		{path: "/tmp/a.yaml", format: "yaml"},
		{path: "/tmp/a.yml", format: "yaml"},
		{path: "/tmp/a.toml", format: "toml"},
		{path: "/tmp/a.conf", format: "json"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tt.path)
			var got []string
			switch tt.format {
			case "json":
				got = j
			case "yaml":
				got = y
			case "toml":
				got = tm
			}
			require.NotEmpty(t, got)
			assert.Equal(t, tt.path, got[0])
		})
	}
}

func TestConfigCandidatePathsDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	wd := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Setenv("PWD", wd)
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	j, y, tm := configpaths.ConfigCandidatePaths("")
	assert.Contains(t, j, filepath.Join(wd, "apigen.json"))
	assert.Contains(t, y, filepath.Join(wd, "apigen.yml"))
	assert.Contains(t, tm, filepath.Join(xdg, "apigen", "config.toml"))
	assert.Contains(t, y, "/etc/apigen/config.yaml")
	assert.Equal(t, filepath.Join(wd, "apigen.json"), j[0])
}

func TestDefaultConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	for format, want := range map[string]string{"json": "config.json", "yml": "config.yaml", "toml": "config.toml", "": "config.json"} {
		p, err := configpaths.DefaultConfigPath(format)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(xdg, "apigen", want), p)
	}
}
