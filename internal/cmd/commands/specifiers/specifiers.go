package specifiers

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/decnum/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagConfig   string
	flagLogLevel string
}

func (c *Command) Synopsis() string {
	return "List the document specifier table"
}

func (c *Command) Help() string {
	return `Usage: decnum specifiers [options]

  Lists every specifier abbreviation with the archive directory it maps to.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("specifiers", flag.ContinueOnError))

	f.ConfigVar(&c.flagConfig)
	f.LogLevelVar(&c.flagLogLevel)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if err := c.SetLogLevel(c.flagLogLevel); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	table, err := c.SpecifierTable(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading specifier table: %v", err))
		return 1
	}

	for _, e := range table.Entries() {
		c.UI.Output(fmt.Sprintf("%-5s %-6s %s", e.Abbreviation, e.Directory, e.Description))
	}

	return 0
}
