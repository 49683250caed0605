package doc

import "strings"

// Separator joins path segments in Alumina source and in rendered paths.
const Separator = "::"

// Path is an ordered sequence of name segments, root first. Paths are value
// types: two paths are equal iff their segments match element-wise, and all
// derived paths own their own backing storage.
type Path struct {
	segs []string
}

// ParsePath splits s on "::", dropping empty segments, so both
// "std::collections::Vector" and "::std::collections" parse to the same path.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	parts := strings.Split(s, Separator)
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return Path{segs: segs}
}

// NewPath builds a path from literal segments.
func NewPath(segs ...string) Path {
	if len(segs) == 0 {
		return Path{}
	}
	own := make([]string, len(segs))
	copy(own, segs)
	return Path{segs: own}
}

// Len reports the number of segments.
func (p Path) Len() int { return len(p.segs) }

// IsEmpty reports whether p is the root path.
func (p Path) IsEmpty() bool { return len(p.segs) == 0 }

// Segments returns a copy of the segment list.
func (p Path) Segments() []string {
	out := make([]string, len(p.segs))
	copy(out, p.segs)
	return out
}

// Last returns the final segment, or "" for the root path.
func (p Path) Last() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[len(p.segs)-1]
}

// First returns the leading segment, or "" for the root path.
func (p Path) First() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[0]
}

// Parent returns the path with the last segment removed. The parent of the
// root path is the root path.
func (p Path) Parent() Path {
	if len(p.segs) == 0 {
		return Path{}
	}
	return NewPath(p.segs[:len(p.segs)-1]...)
}

// Child returns p extended with one segment.
func (p Path) Child(name string) Path {
	segs := make([]string, len(p.segs)+1)
	copy(segs, p.segs)
	segs[len(p.segs)] = name
	return Path{segs: segs}
}

// Join returns the concatenation p ++ other.
func (p Path) Join(other Path) Path {
	if other.IsEmpty() {
		return NewPath(p.segs...)
	}
	segs := make([]string, 0, len(p.segs)+len(other.segs))
	segs = append(segs, p.segs...)
	segs = append(segs, other.segs...)
	return Path{segs: segs}
}

// HasPrefix reports whether prefix matches the leading segments of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.segs) > len(p.segs) {
		return false
	}
	for i, s := range prefix.segs {
		if p.segs[i] != s {
			return false
		}
	}
	return true
}

// TrimPrefix returns p with prefix removed. If prefix does not match, p is
// returned unchanged.
func (p Path) TrimPrefix(prefix Path) Path {
	if !p.HasPrefix(prefix) {
		return NewPath(p.segs...)
	}
	return NewPath(p.segs[len(prefix.segs):]...)
}

// Equal reports element-wise segment equality.
func (p Path) Equal(other Path) bool {
	if len(p.segs) != len(other.segs) {
		return false
	}
	for i, s := range p.segs {
		if other.segs[i] != s {
			return false
		}
	}
	return true
}

// Compare orders paths lexicographically over their segments.
func (p Path) Compare(other Path) int {
	n := len(p.segs)
	if len(other.segs) < n {
		n = len(other.segs)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(p.segs[i], other.segs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.segs) < len(other.segs):
		return -1
	case len(p.segs) > len(other.segs):
		return 1
	default:
		return 0
	}
}

// String renders the segments joined by "::". The root path renders as "::".
// The rendered form doubles as the map key for path-indexed tables.
func (p Path) String() string {
	if len(p.segs) == 0 {
		return Separator
	}
	return strings.Join(p.segs, Separator)
}
