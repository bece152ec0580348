package version

import (
	"fmt"

	"github.com/hashicorp-forge/decnum/internal/cmd/base"
	"github.com/hashicorp-forge/decnum/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the decnum version"
}

func (c *Command) Help() string {
	return `Usage: decnum version

  Prints the version of decnum.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("decnum v%s", version.Version))
	return 0
}
