package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/decnum/internal/cmd/base"
	"github.com/hashicorp-forge/decnum/internal/cmd/commands/resolve"
	"github.com/hashicorp-forge/decnum/internal/cmd/commands/specifiers"
	"github.com/hashicorp-forge/decnum/internal/cmd/commands/version"
)

// Commands is the mapping of all available decnum commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"resolve": func() (cli.Command, error) {
			return &resolve.Command{Command: b}, nil
		},
		"specifiers": func() (cli.Command, error) {
			return &specifiers.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
