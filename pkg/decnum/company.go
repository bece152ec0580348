package decnum

import (
	"strings"
)

const (
	// segmentSeparator delimits the groups of a decimal number.
	segmentSeparator = "."

	// softwareSeparator delimits the item code in software decimal numbers.
	softwareSeparator = "-"
)

// CompanyCode is the canonical code of the organizational unit that issued a
// document. It is always the first segment of a resolved path.
type CompanyCode string

const (
	// CompanyCodeVUIA is written as "ВУИА." in decimal numbers.
	CompanyCodeVUIA CompanyCode = "VUIA"

	// CompanyCodeUPIA is written as "ЮПИЯ." in decimal numbers.
	CompanyCodeUPIA CompanyCode = "_UPI_A"

	// CompanyCodeBA is written positionally: "БА", one character, then ".".
	CompanyCodeBA CompanyCode = "BA"
)

// ValidCompanyCodes returns all canonical company codes.
func ValidCompanyCodes() []CompanyCode {
	return []CompanyCode{
		CompanyCodeVUIA,
		CompanyCodeUPIA,
		CompanyCodeBA,
	}
}

// IsValid returns true if this is a recognized company code.
func (c CompanyCode) IsValid() bool {
	switch c {
	case CompanyCodeVUIA, CompanyCodeUPIA, CompanyCodeBA:
		return true
	default:
		return false
	}
}

// SupportsSoftware returns true if documents issued under this code may be
// software documents. BA documents never are.
func (c CompanyCode) SupportsSoftware() bool {
	return c == CompanyCodeVUIA || c == CompanyCodeUPIA
}

// String returns the string representation of the company code.
func (c CompanyCode) String() string {
	return string(c)
}

// prefix returns the canonical code followed by the segment separator.
func (c CompanyCode) prefix() string {
	return string(c) + segmentSeparator
}

// formKind tells how a surface form is turned into its canonical code.
type formKind int

const (
	// formSubstitution replaces a prefix token with the canonical code.
	formSubstitution formKind = iota

	// formPositional removes the token and the first separator, then
	// prepends the canonical code and a separator.
	formPositional
)

// surfaceForm is one accepted way of writing a company code in the input.
type surfaceForm struct {
	kind formKind
	code CompanyCode

	// tokens are the accepted prefixes of a substitution form. Each must be
	// followed by the segment separator.
	tokens []string

	// token is the prefix of a positional form, and separatorIndex the rune
	// index at which the segment separator must appear.
	token          string
	separatorIndex int
}

// surfaceForms lists the accepted company code forms in matching order.
var surfaceForms = []surfaceForm{
	{kind: formSubstitution, code: CompanyCodeVUIA, tokens: []string{"ВУИА", string(CompanyCodeVUIA)}},
	{kind: formSubstitution, code: CompanyCodeUPIA, tokens: []string{"ЮПИЯ", string(CompanyCodeUPIA)}},
	{kind: formPositional, code: CompanyCodeBA, token: "БА", separatorIndex: 3},
}

// normalize rewrites decimalNumber with the canonical code when the form
// matches. The second return value reports whether it matched.
func (f surfaceForm) normalize(decimalNumber string) (string, bool) {
	switch f.kind {
	case formSubstitution:
		for _, token := range f.tokens {
			if rest, ok := strings.CutPrefix(decimalNumber, token+segmentSeparator); ok {
				return f.code.prefix() + rest, true
			}
		}
		return "", false

	case formPositional:
		rest, ok := strings.CutPrefix(decimalNumber, f.token)
		if !ok {
			return "", false
		}
		runes := []rune(decimalNumber)
		if len(runes) <= f.separatorIndex || string(runes[f.separatorIndex]) != segmentSeparator {
			return "", false
		}
		return f.code.prefix() + strings.Replace(rest, segmentSeparator, "", 1), true

	default:
		return "", false
	}
}

// NormalizeCompanyCode finds the company code of decimalNumber and returns it
// together with the number rewritten to start with "<code>.".
//
// Normalizing the output of a VUIA or _UPI_A number again leaves it
// unchanged. The BA code is only recognized in its positional native form, so
// its output is not accepted a second time.
func NormalizeCompanyCode(decimalNumber string) (CompanyCode, string, error) {
	for _, form := range surfaceForms {
		if normalized, ok := form.normalize(decimalNumber); ok {
			return form.code, normalized, nil
		}
	}
	return "", "", &ResolveError{
		Kind:          ErrUnsupportedCompanyCode,
		DecimalNumber: decimalNumber,
	}
}
