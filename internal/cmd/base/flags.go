package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps flag.FlagSet with help rendering and the flags shared by
// all subcommands.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// ConfigVar registers the -config flag.
func (f *FlagSet) ConfigVar(p *string) {
	f.StringVar(p, "config", "",
		"[DECNUM_SPECIFIERS] Path to a specifier table (.hcl, .json, .yaml)")
}

// LogLevelVar registers the -log-level flag.
func (f *FlagSet) LogLevelVar(p *string) {
	f.StringVar(p, "log-level", "",
		"Log level (trace, debug, info, warn, error)")
}

// Help renders the flag defaults for a command help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&buf, "\n\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&buf, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&buf, "\n      %s", fl.Usage)
	})
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:" + strings.TrimRight(buf.String(), "\n")
}
