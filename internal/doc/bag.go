// Package doc implements the symbol table behind the Alumina documentation
// generator: a path-indexed bag of declarations, transitive resolution of
// import aliases and glob imports, materialization of re-exported items,
// and stable cross-reference links.
package doc

import (
	"sort"

	"github.com/CyberFlameGO/alumina/internal/arena"
)

// Bag is the symbol table. It owns every Item through an arena, indexes
// items by their exposed path, and records the alias and glob-import edges
// the resolver walks.
//
// Lifecycle: populate with AddItem/AddAlias/AddGlobAlias, run ResolveAll,
// then Sort. After that the bag is read-only and may be queried from any
// number of goroutines; Free tears the whole table down at once.
type Bag struct {
	items  *arena.Arena[Item]
	all    []*Item
	byPath map[string]*Item

	// alias source -> destination, one entry per named import directive;
	// a repeated source keeps the last directive, matching shadowing.
	aliases map[string]aliasEdge
	// glob-import scope -> destination scope, one entry per wildcard import.
	globs map[string]Path

	aliasOrder []string
}

type aliasEdge struct {
	src Path
	dst Path
}

// NewBag creates an empty symbol table.
func NewBag() *Bag {
	return &Bag{
		items:   arena.New[Item](),
		byPath:  make(map[string]*Item),
		aliases: make(map[string]aliasEdge),
		globs:   make(map[string]Path),
	}
}

// AddItem copies the item into the bag and indexes it by its exposed path.
// Re-adding the same (path, cfg index) replaces the earlier record outright.
// When several cfg variants share a path, the index prefers the CfgIndex 0
// entry so unqualified lookups see the default configuration.
func (b *Bag) AddItem(item Item) *Item {
	key := item.Path.String()
	if prev := b.findExact(item.Path, item.CfgIndex); prev != nil {
		*prev = item
		if b.byPath[key] == nil || b.byPath[key].CfgIndex >= item.CfgIndex {
			b.byPath[key] = prev
		}
		return prev
	}
	p := b.items.Alloc(item)
	b.all = append(b.all, p)
	if cur, ok := b.byPath[key]; !ok || cur.CfgIndex > item.CfgIndex {
		b.byPath[key] = p
	}
	return p
}

func (b *Bag) findExact(path Path, cfgIndex int) *Item {
	if it, ok := b.byPath[path.String()]; ok && it.CfgIndex == cfgIndex {
		return it
	}
	for _, it := range b.all {
		if it.CfgIndex == cfgIndex && it.Path.Equal(path) {
			return it
		}
	}
	return nil
}

// AddAlias records a named import directive: src now refers to dst. A later
// directive with the same source shadows the earlier one.
func (b *Bag) AddAlias(src, dst Path) {
	key := src.String()
	if _, ok := b.aliases[key]; !ok {
		b.aliasOrder = append(b.aliasOrder, key)
	}
	b.aliases[key] = aliasEdge{src: src, dst: dst}
}

// AddGlobAlias records a wildcard import: every name in dst is visible
// unqualified inside scope. Last directive wins per scope.
func (b *Bag) AddGlobAlias(scope, dst Path) {
	b.globs[scope.String()] = dst
}

// Get returns the item exposed at path, preferring the default cfg variant.
func (b *Bag) Get(path Path) *Item {
	return b.byPath[path.String()]
}

// GetCfg returns the item at (path, cfgIndex), or nil.
func (b *Bag) GetCfg(path Path, cfgIndex int) *Item {
	return b.findExact(path, cfgIndex)
}

// Len reports the number of items, materialized re-exports included.
func (b *Bag) Len() int { return len(b.all) }

// All returns the item list. After Sort the order is deterministic. The
// returned slice is the bag's own; callers must not modify it.
func (b *Bag) All() []*Item { return b.all }

// Filtered returns the items satisfying keep, in list order.
func (b *Bag) Filtered(keep func(*Item) bool) []*Item {
	var out []*Item
	for _, it := range b.all {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Sort fixes the iteration order: by enclosing scope, then by kind section,
// then by declaration offset, then by name. Siblings group together, kinds
// form sections in enum order, declaration order survives within a section,
// and the name breaks remaining ties.
func (b *Bag) Sort() {
	sort.SliceStable(b.all, func(i, j int) bool {
		a, c := b.all[i], b.all[j]
		if cmp := a.Path.Parent().Compare(c.Path.Parent()); cmp != 0 {
			return cmp < 0
		}
		if a.Kind != c.Kind {
			return a.Kind < c.Kind
		}
		if a.Offset != c.Offset {
			return a.Offset < c.Offset
		}
		return a.Path.Last() < c.Path.Last()
	})
}

// Free releases every item and the index maps. The bag and any *Item
// obtained from it must not be used afterwards.
func (b *Bag) Free() {
	b.items.Free()
	b.all = nil
	b.byPath = nil
	b.aliases = nil
	b.globs = nil
	b.aliasOrder = nil
}
