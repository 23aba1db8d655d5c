// Package templates ships the default eovim client templates, used when no
// template directory or explicit template list is given.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.tmpl
var embedded embed.FS

// FS exposes the built-in templates.
func FS() fs.FS { return embedded }
