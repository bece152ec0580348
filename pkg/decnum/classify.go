package decnum

import (
	"strings"
	"unicode/utf8"
)

const (
	// SpecificationSpecifier is the abbreviation of a specification document.
	SpecificationSpecifier = "СП"

	// DetailSpecifier is the abbreviation of a detail design document.
	DetailSpecifier = "КД"
)

// isDigitIn reports whether r is in the closed digit range [lo, hi].
func isDigitIn(r, lo, hi rune) bool {
	return r >= lo && r <= hi
}

// isNativeLetter reports whether r is a letter of the native alphabet, the
// range А..я. Ё and ё fall outside it.
func isNativeLetter(r rune) bool {
	return r >= 'А' && r <= 'я'
}

func containsNativeLetter(s string) bool {
	return strings.IndexFunc(s, isNativeLetter) >= 0
}

func leadingRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// IsSoftware reports whether a normalized decimal number denotes a software
// document: the company code must support software and the first character
// after "<code>." must be a digit from 0 to 2.
func IsSoftware(code CompanyCode, normalized string) bool {
	if !code.SupportsSoftware() {
		return false
	}
	rest, ok := strings.CutPrefix(normalized, code.prefix())
	if !ok {
		return false
	}
	r, ok := leadingRune(rest)
	return ok && isDigitIn(r, '0', '2')
}

// DefaultSpecifier returns the specifier abbreviation implied by a middle
// part when a standard decimal number carries none. A leading digit from 1 to
// 6 means a specification, 7 to 9 a detail design. Anything else has no
// default.
func DefaultSpecifier(middle string) (string, bool) {
	r, ok := leadingRune(middle)
	switch {
	case !ok:
		return "", false
	case isDigitIn(r, '1', '6'):
		return SpecificationSpecifier, true
	case isDigitIn(r, '7', '9'):
		return DetailSpecifier, true
	default:
		return "", false
	}
}

// withDefaultSpecifier appends the default specifier to a last part that
// contains no native letters at all.
func withDefaultSpecifier(middle, last string) string {
	if last == "" || containsNativeLetter(last) {
		return last
	}
	if abbreviation, ok := DefaultSpecifier(middle); ok {
		return last + abbreviation
	}
	return last
}
