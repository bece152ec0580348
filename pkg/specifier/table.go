// Package specifier holds the table that maps document specifier
// abbreviations (СП, СБ, Э3, ...) to the directory names used by the
// document archive.
//
// The built-in table is returned by Default. Sites with their own document
// types load an HCL, JSON or YAML file with LoadFile, either replacing the
// built-in entries or extending them.
package specifier

import (
	"fmt"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
)

var (
	// abbreviationPattern requires a leading native letter and no whitespace.
	abbreviationPattern = regexp.MustCompile(`^[А-Яа-я][^\s]*$`)

	// directoryPattern forbids path separators and whitespace.
	directoryPattern = regexp.MustCompile(`^[^/\\\s]+$`)
)

// Entry maps one abbreviation to a directory name.
type Entry struct {
	Abbreviation string `hcl:"abbreviation,label" yaml:"abbreviation" json:"abbreviation"`
	Directory    string `hcl:"directory" yaml:"directory" json:"directory"`
	Description  string `hcl:"description,optional" yaml:"description,omitempty" json:"description,omitempty"`
}

// Validate checks the entry fields.
func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Abbreviation,
			validation.Required,
			validation.Match(abbreviationPattern).
				Error("must start with a Cyrillic letter and contain no whitespace"),
		),
		validation.Field(&e.Directory,
			validation.Required,
			validation.Match(directoryPattern).
				Error("must be a single directory name"),
		),
	)
}

// Table is an immutable abbreviation to directory lookup. It is safe for
// concurrent use.
type Table struct {
	directories map[string]string
	entries     []Entry
}

// NewTable validates entries and builds a table. All invalid and duplicate
// entries are reported together.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		directories: make(map[string]string, len(entries)),
		entries:     make([]Entry, 0, len(entries)),
	}

	var result *multierror.Error
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("specifier %d (%q): %w", i, e.Abbreviation, err))
			continue
		}
		if _, dup := t.directories[e.Abbreviation]; dup {
			result = multierror.Append(result,
				fmt.Errorf("duplicate specifier abbreviation: %s", e.Abbreviation))
			continue
		}
		t.directories[e.Abbreviation] = e.Directory
		t.entries = append(t.entries, e)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].Abbreviation < t.entries[j].Abbreviation
	})

	return t, nil
}

// Merge returns a table with the entries of base plus overrides. An override
// replaces the base entry with the same abbreviation.
func Merge(base *Table, overrides []Entry) (*Table, error) {
	replaced := make(map[string]bool, len(overrides))
	for _, e := range overrides {
		replaced[e.Abbreviation] = true
	}

	var entries []Entry
	if base != nil {
		for _, e := range base.entries {
			if !replaced[e.Abbreviation] {
				entries = append(entries, e)
			}
		}
	}
	entries = append(entries, overrides...)

	return NewTable(entries)
}

// Specifier returns the directory name for an abbreviation.
func (t *Table) Specifier(abbreviation string) (string, bool) {
	dir, ok := t.directories[abbreviation]
	return dir, ok
}

// Entries returns a copy of the entries sorted by abbreviation.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of abbreviations in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
