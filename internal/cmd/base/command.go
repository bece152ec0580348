package base

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/decnum/pkg/specifier"
)

// Command holds what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is used to read specifier table files.
	FS afero.Fs
}

// NewCommand creates a base command reading files from the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		FS:  afero.NewOsFs(),
	}
}

// SetLogLevel sets the logger level from a flag value. An empty value keeps
// the current level.
func (c *Command) SetLogLevel(level string) error {
	if level == "" {
		return nil
	}
	l := hclog.LevelFromString(level)
	if l == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s", level)
	}
	c.Log.SetLevel(l)
	return nil
}

// SpecifierTableEnv names the environment variable consulted when no
// -config flag is given.
const SpecifierTableEnv = "DECNUM_SPECIFIERS"

// SpecifierTable loads the table at path, falling back to
// $DECNUM_SPECIFIERS and then to the built-in table.
func (c *Command) SpecifierTable(path string) (*specifier.Table, error) {
	if path == "" {
		path = os.Getenv(SpecifierTableEnv)
	}
	if path == "" {
		return specifier.Default(), nil
	}

	table, err := specifier.LoadFile(c.FS, path)
	if err != nil {
		return nil, err
	}
	c.Log.Debug("loaded specifier table", "path", path, "specifiers", table.Len())
	return table, nil
}
