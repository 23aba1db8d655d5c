// Package config holds the root command-line definition shared by main and tests.
package config

import (
	"github.com/eovim/apigen/internal/cmd"
	"github.com/eovim/apigen/internal/log"
)

type CLI struct {
	Log        log.Options `embed:"" prefix:"log."`
	ConfigFile string      `name:"config" help:"Path to a JSON, YAML or TOML config file" env:"APIGEN_CONFIG" type:"path"`

	Generate cmd.Generate      `cmd:"" help:"Render C client glue from an API description"`
	Registry cmd.Registry      `cmd:"" help:"List the protocol type registry"`
	Inspect  cmd.Inspect       `cmd:"" help:"Print the enriched API model"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration file helpers"`
	Version  cmd.Version       `cmd:"" help:"Print the generator version"`
}
