package decnum

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCompanyCode means no company code form matched the start
	// of the decimal number.
	ErrUnsupportedCompanyCode = errors.New("unsupported company code")

	// ErrUnsupportedDecimalNumberType means the grammar of the document class
	// could not find its delimiter or interpret the structure.
	ErrUnsupportedDecimalNumberType = errors.New("unsupported decimal number type")

	// ErrUnsupportedDocSpecifier means the specifier abbreviation has no
	// entry in the lookup table.
	ErrUnsupportedDocSpecifier = errors.New("unsupported document specifier")
)

// ResolveError is returned for every failed resolution. Kind is one of the
// Err* sentinels and is matched by errors.Is.
type ResolveError struct {
	Kind          error
	DecimalNumber string

	// Specifier is the unresolved abbreviation, set only for
	// ErrUnsupportedDocSpecifier.
	Specifier string
}

func (e *ResolveError) Error() string {
	if e.Specifier != "" {
		return fmt.Sprintf("%s %q in decimal number %q", e.Kind, e.Specifier, e.DecimalNumber)
	}
	return fmt.Sprintf("%s in decimal number %q", e.Kind, e.DecimalNumber)
}

func (e *ResolveError) Unwrap() error {
	return e.Kind
}
