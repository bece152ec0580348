package decnum

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// softwareItemLength is the length of a bare software item code. Such items
// are implicitly specification documents.
const softwareItemLength = 3

// SpecifierLookup resolves a specifier abbreviation to the canonical
// directory name of that document type. Implementations must be safe for
// concurrent reads.
type SpecifierLookup interface {
	Specifier(abbreviation string) (string, bool)
}

// Resolver turns decimal numbers into storage paths.
type Resolver struct {
	specifiers SpecifierLookup
	logger     hclog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger that receives a warning for every failed
// resolution.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a resolver backed by the given specifier lookup.
func New(specifiers SpecifierLookup, opts ...Option) (*Resolver, error) {
	if specifiers == nil {
		return nil, fmt.Errorf("specifier lookup is required")
	}

	r := &Resolver{
		specifiers: specifiers,
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Resolve returns the storage path of decimalNumber. Errors are always
// *ResolveError values wrapping one of the Err* sentinels.
func (r *Resolver) Resolve(decimalNumber string) (Path, error) {
	code, normalized, err := NormalizeCompanyCode(decimalNumber)
	if err != nil {
		r.logger.Warn("unsupported company code in decimal number",
			"decimal_number", decimalNumber)
		return Path{}, err
	}

	body := strings.TrimPrefix(normalized, code.prefix())

	var middle string
	var lastSegments []string
	if IsSoftware(code, normalized) {
		var last string
		middle, last, err = r.splitSoftware(decimalNumber, body)
		if err != nil {
			return Path{}, err
		}
		lastSegments, err = r.softwareSegments(decimalNumber, last)
	} else {
		var last string
		middle, last, err = r.splitStandard(decimalNumber, body)
		if err != nil {
			return Path{}, err
		}
		lastSegments, err = r.standardSegments(decimalNumber, withDefaultSpecifier(middle, last))
	}
	if err != nil {
		return Path{}, err
	}

	p := NewPath(append([]string{code.String(), middle}, lastSegments...)...)

	r.logger.Debug("resolved decimal number",
		"decimal_number", decimalNumber,
		"path", p.String(),
	)

	return p, nil
}

// ResolveAll resolves every decimal number. The returned slice is aligned
// with the input and holds a zero Path for each failure; all failures are
// combined into one multierror.
func (r *Resolver) ResolveAll(decimalNumbers []string) ([]Path, error) {
	paths := make([]Path, len(decimalNumbers))

	var result *multierror.Error
	for i, decimalNumber := range decimalNumbers {
		p, err := r.Resolve(decimalNumber)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		paths[i] = p
	}

	return paths, result.ErrorOrNil()
}

// splitSoftware splits the body of a software decimal number at the first
// "-" into the middle and last parts.
func (r *Resolver) splitSoftware(decimalNumber, body string) (string, string, error) {
	middle, last, found := strings.Cut(body, softwareSeparator)
	if !found || middle == "" || strings.TrimSpace(last) == "" {
		r.logger.Warn("unsupported software decimal number type",
			"decimal_number", decimalNumber)
		return "", "", &ResolveError{
			Kind:          ErrUnsupportedDecimalNumberType,
			DecimalNumber: decimalNumber,
		}
	}
	return middle, last, nil
}

// splitStandard splits the body of a standard decimal number at the next
// "." into the middle and last parts.
func (r *Resolver) splitStandard(decimalNumber, body string) (string, string, error) {
	middle, last, found := strings.Cut(body, segmentSeparator)
	if !found || middle == "" {
		r.logger.Warn("unsupported decimal number type",
			"decimal_number", decimalNumber)
		return "", "", &ResolveError{
			Kind:          ErrUnsupportedDecimalNumberType,
			DecimalNumber: decimalNumber,
		}
	}
	return middle, last, nil
}

// softwareSegments builds the path segments of a software last part. A
// three character item code is a specification; any other last part yields
// one segment per whitespace separated token.
func (r *Resolver) softwareSegments(decimalNumber, last string) ([]string, error) {
	item := strings.TrimSpace(last)
	if utf8.RuneCountInString(item) == softwareItemLength {
		directory, err := r.lookup(decimalNumber, SpecificationSpecifier)
		if err != nil {
			return nil, err
		}
		return []string{item, directory}, nil
	}
	return strings.Fields(last), nil
}

// standardSegments builds the path segments of a standard last part: the
// item number, split before its "-", followed by the specifier directory.
func (r *Resolver) standardSegments(decimalNumber, last string) ([]string, error) {
	last = strings.Join(strings.Fields(last), "")

	numbers, abbreviation := last, ""
	if i := strings.IndexFunc(last, isNativeLetter); i >= 0 {
		numbers, abbreviation = last[:i], last[i:]
	}

	directory, err := r.lookup(decimalNumber, abbreviation)
	if err != nil {
		return nil, err
	}

	return append(splitItemNumber(numbers), directory), nil
}

// lookup resolves a specifier abbreviation, treating a missing entry as an
// error.
func (r *Resolver) lookup(decimalNumber, abbreviation string) (string, error) {
	if abbreviation != "" {
		if directory, ok := r.specifiers.Specifier(abbreviation); ok && directory != "" {
			return directory, nil
		}
	}

	r.logger.Warn("unsupported document specifier",
		"decimal_number", decimalNumber,
		"specifier", abbreviation)
	return "", &ResolveError{
		Kind:          ErrUnsupportedDocSpecifier,
		DecimalNumber: decimalNumber,
		Specifier:     abbreviation,
	}
}

// splitItemNumber nests a compound item number: "12-3" becomes "12", "-3".
func splitItemNumber(numbers string) []string {
	i := strings.Index(numbers, softwareSeparator)
	if i < 0 {
		return []string{numbers}
	}
	return []string{numbers[:i], numbers[i:]}
}
