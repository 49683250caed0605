package doc

import (
	"fmt"
	"log/slog"
	"strings"
)

// maxResolveHops bounds how many alias and glob edges one Resolve call may
// follow. The alias graph of a compiling program is acyclic, but nothing
// stops a collector from feeding a cycle; the budget turns that into a miss
// instead of unbounded recursion.
var maxResolveHops = 64

// SetMaxResolveHops adjusts the per-resolution hop budget. Values below 1
// are ignored. Intended for configuration at startup.
func SetMaxResolveHops(n int) {
	if n >= 1 {
		maxResolveHops = n
	}
}

// CyclicAliasError reports that re-export materialization hit its pass cap
// while aliases were still unresolved, which only happens when the alias
// graph contains a cycle.
type CyclicAliasError struct {
	Unresolved []string
}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("cyclic import chain, %d aliases unresolved: %s",
		len(e.Unresolved), strings.Join(e.Unresolved, ", "))
}

// Resolve answers "what does path, written inside scope, refer to?". The
// search tries, at each scope level: a concrete item at scope ++ path, then
// an alias registered at that joined path, then the scope's glob import.
// With climb set, failure pops the innermost scope segment and retries, so
// a name used in a nested scope can reach a glob import of an enclosing
// scope. Glob destinations are searched without climbing: a glob brings one
// scope's names into view, not that scope's entire lexical context.
func (b *Bag) Resolve(scope, path Path, climb bool) *Item {
	return b.resolveHops(scope, path, climb, maxResolveHops)
}

func (b *Bag) resolveHops(scope, path Path, climb bool, hops int) *Item {
	if hops <= 0 {
		return nil
	}
	cur := scope
	for {
		joined := cur.Join(path)
		if it := b.Get(joined); it != nil {
			return it
		}
		if edge, ok := b.aliases[joined.String()]; ok {
			// The destination may itself be relative, so it gets the
			// same scope and the full fallback search.
			if it := b.resolveHops(cur, edge.dst, true, hops-1); it != nil {
				return it
			}
		}
		if dst, ok := b.globs[cur.String()]; ok {
			if it := b.resolveHops(dst, path, false, hops-1); it != nil {
				return it
			}
		}
		if !climb || cur.IsEmpty() {
			return nil
		}
		cur = cur.Parent()
	}
}

// syncReexport materializes the contents of canonicalScope under
// sourceScope: every item nested at canonicalScope ++ suffix that has no
// counterpart at sourceScope ++ suffix gets a synthesized copy there. The
// copy keeps the original's kind, cfg index, doc text and declaration site;
// only the exposed path changes. Returns the number of items created.
func (b *Bag) syncReexport(sourceScope, canonicalScope Path) int {
	// AddItem appends to b.all; snapshot what exists now.
	existing := b.all[:len(b.all):len(b.all)]
	added := 0
	for _, it := range existing {
		if !it.Path.HasPrefix(canonicalScope) {
			continue
		}
		target := sourceScope.Join(it.Path.TrimPrefix(canonicalScope))
		if b.findExact(target, it.CfgIndex) != nil {
			continue
		}
		mirrored := *it
		mirrored.Path = target
		b.AddItem(mirrored)
		added++
	}
	return added
}

// ResolveAll drives re-export materialization to a fixed point. Each pass
// resolves every alias from the scope containing it; aliases that reach a
// concrete item but are not yet concrete themselves get their target's
// contents mirrored in. Chained re-exports, and re-exports that only become
// resolvable once a sibling has been materialized, converge here regardless
// of the order facts entered the bag.
//
// Aliases that never resolve are normal (targets outside the documented
// tree) and are not errors. Hitting the pass cap while still inserting is
// reported as a CyclicAliasError rather than looping forever.
func (b *Bag) ResolveAll() error {
	maxPasses := len(b.aliasOrder) + 1
	for pass := 1; ; pass++ {
		added := 0
		for _, key := range b.aliasOrder {
			edge := b.aliases[key]
			if b.Get(edge.src) != nil {
				continue
			}
			it := b.Resolve(edge.src.Parent(), NewPath(edge.src.Last()), true)
			if it == nil {
				continue
			}
			added += b.syncReexport(edge.src, it.DefinedIn)
		}
		slog.Debug("re-export pass finished", "pass", pass, "materialized", added)
		if added == 0 {
			return nil
		}
		if pass >= maxPasses {
			return &CyclicAliasError{Unresolved: b.unresolvedAliases()}
		}
	}
}

func (b *Bag) unresolvedAliases() []string {
	var out []string
	for _, key := range b.aliasOrder {
		if b.Get(b.aliases[key].src) == nil {
			out = append(out, key)
		}
	}
	return out
}
