package resolve

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/decnum/internal/cmd/base"
	"github.com/hashicorp-forge/decnum/pkg/decnum"
)

type Command struct {
	*base.Command

	flagConfig    string
	flagJSON      bool
	flagSeparator string
	flagLogLevel  string
}

// result is one line of -json output.
type result struct {
	DecimalNumber string   `json:"decimal_number"`
	Path          string   `json:"path,omitempty"`
	Segments      []string `json:"segments,omitempty"`
	Error         string   `json:"error,omitempty"`
}

func (c *Command) Synopsis() string {
	return "Resolve decimal numbers to archive paths"
}

func (c *Command) Help() string {
	return `Usage: decnum resolve [options] DECIMAL_NUMBER...

  Prints the archive path of each decimal number, one per line. Software
  numbers with several item tokens must be quoted, e.g. "ЮПИЯ.00123-01 12 01".

  Exits 1 if any decimal number cannot be resolved.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("resolve", flag.ContinueOnError))

	f.ConfigVar(&c.flagConfig)
	f.LogLevelVar(&c.flagLogLevel)
	f.BoolVar(
		&c.flagJSON, "json", false,
		"Print results as JSON",
	)
	f.StringVar(
		&c.flagSeparator, "separator", "slash",
		"Path separator: slash (/) or os (platform separator)",
	)

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

	if c.flagSeparator != "slash" && c.flagSeparator != "os" {
		c.UI.Error(fmt.Sprintf("invalid separator %q (valid: slash, os)", c.flagSeparator))
		return 1
	}

	numbers := f.Args()
	if len(numbers) == 0 {
		c.UI.Error("at least one decimal number is required")
		c.UI.Error(c.Help())
		return 1
	}

	table, err := c.SpecifierTable(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading specifier table: %v", err))
		return 1
	}

	resolver, err := decnum.New(table, decnum.WithLogger(c.Log))
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating resolver: %v", err))
		return 1
	}

	paths, err := resolver.ResolveAll(numbers)
	results := c.results(numbers, paths, err)

	if c.flagJSON {
		out, jsonErr := json.MarshalIndent(results, "", "  ")
		if jsonErr != nil {
			c.UI.Error(fmt.Sprintf("error encoding results: %v", jsonErr))
			return 1
		}
		c.UI.Output(string(out))
	} else {
		for _, r := range results {
			if r.Error != "" {
				c.UI.Error(r.Error)
				continue
			}
			c.UI.Output(r.Path)
		}
	}

	if err != nil {
		return 1
	}
	return 0
}

// results pairs every input with its path or error. ResolveAll reports
// failures in input order, one per zero path.
func (c *Command) results(numbers []string, paths []decnum.Path, err error) []result {
	var failures []error
	var merr *multierror.Error
	if errors.As(err, &merr) {
		failures = merr.Errors
	}

	results := make([]result, len(numbers))
	for i, number := range numbers {
		results[i].DecimalNumber = number
		if paths[i].IsZero() {
			if len(failures) > 0 {
				results[i].Error = failures[0].Error()
				failures = failures[1:]
			}
			continue
		}
		results[i].Path = c.render(paths[i])
		results[i].Segments = paths[i].Segments()
	}
	return results
}

func (c *Command) render(p decnum.Path) string {
	if c.flagSeparator == "os" {
		return p.FilePath()
	}
	return p.String()
}
