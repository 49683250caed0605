package doc

import "strings"

// Item is one resolved documentation entry. Path is where the entry is
// exposed, which under a re-export differs from DefinedIn, the location of
// the original declaration. CfgIndex separates declarations that share a
// path under mutually exclusive compile-time configurations; 0 is the
// default or only definition.
type Item struct {
	Kind      ItemKind
	Path      Path
	DefinedIn Path
	CfgIndex  int
	Doc       string

	// Declaration site, for jump-to-source and declaration-order sorting.
	File   string
	Offset int

	HasCfg bool
	// Group names the doc group the declaration was tagged with, if any.
	Group string
}

// publicRoots are namespaces whose items are always treated as exported,
// regardless of where the compiler surfaces them. Builtin and intrinsic
// docs are declared under synthetic paths that would otherwise fail the
// promotion check below.
var publicRoots = []Path{
	NewPath("std", "builtins"),
	NewPath("std", "intrinsics"),
}

// SetPublicRoots replaces the always-exported namespace list. Intended for
// configuration at startup, before any resolution runs.
func SetPublicRoots(paths []string) {
	roots := make([]Path, 0, len(paths))
	for _, p := range paths {
		roots = append(roots, ParsePath(p))
	}
	publicRoots = roots
}

// IsExported decides whether the item belongs to the documented surface.
// Alumina has no visibility keyword, so this is a heuristic:
//
//   - a leading underscore on the final segment marks the item private;
//   - an item exposed exactly where it was declared is exported;
//   - items under a reserved namespace are always exported;
//   - otherwise the item was re-exported, and it counts as exported only
//     when the re-export is a promotion: after stripping the longest common
//     suffix of the exposed and declared paths, the remaining exposed
//     prefix must be a leading prefix of the remaining declared prefix
//     (std::collections::vector::Vector promoted to std::collections::Vector),
//     not an unrelated rename.
//
// The promotion rule admits some accidental suffix collisions and rejects
// some legitimate cross-module re-exports; it is an approximation, not a
// soundness guarantee.
func (it *Item) IsExported() bool {
	if strings.HasPrefix(it.Path.Last(), "_") {
		return false
	}
	if it.Path.Equal(it.DefinedIn) {
		return true
	}
	for _, root := range publicRoots {
		if it.Path.HasPrefix(root) || it.DefinedIn.HasPrefix(root) {
			return true
		}
	}
	suffix := commonSuffixLen(it.Path, it.DefinedIn)
	exposed := NewPath(it.Path.segs[:it.Path.Len()-suffix]...)
	declared := NewPath(it.DefinedIn.segs[:it.DefinedIn.Len()-suffix]...)
	return declared.HasPrefix(exposed)
}

// commonSuffixLen counts segments matching from the right.
func commonSuffixLen(a, b Path) int {
	as, bs := a.segs, b.segs
	n := 0
	for n < len(as) && n < len(bs) && as[len(as)-1-n] == bs[len(bs)-1-n] {
		n++
	}
	return n
}
