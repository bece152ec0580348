package decnum

import (
	"path/filepath"
	"strings"
)

// Path is the storage location of a document as an ordered list of
// directory segments: company code, middle part, then the last part
// segments. Paths are immutable once created.
type Path struct {
	segments []string
}

// NewPath creates a path from segments. Empty segments are dropped.
func NewPath(segments ...string) Path {
	var p Path
	for _, s := range segments {
		if s != "" {
			p.segments = append(p.segments, s)
		}
	}
	return p
}

// Segments returns a copy of the path segments.
func (p Path) Segments() []string {
	if len(p.segments) == 0 {
		return nil
	}
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// IsZero returns true for the empty path.
func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// Equal returns true if both paths have the same segments.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// String joins the segments with "/".
// Format: "VUIA/735678/123/KD"
func (p Path) String() string {
	return strings.Join(p.segments, "/")
}

// FilePath joins the segments with the platform path separator.
func (p Path) FilePath() string {
	return filepath.Join(p.segments...)
}

// MarshalText implements encoding.TextMarshaler using the "/" form.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
