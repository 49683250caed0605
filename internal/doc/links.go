package doc

import (
	"fmt"
	"strings"
)

// PageSuffix is the default extension of non-module pages.
const PageSuffix = ".html"

// DefaultIndexFile names the page served for directory-style module links.
const DefaultIndexFile = "index.html"

// LinkContext turns resolved items into site-relative URLs. It is a
// read-only view over a resolved bag and is safe to share once ResolveAll
// and Sort have run.
type LinkContext struct {
	Bag *Bag

	// IndexFile is appended when a filename is requested for a module
	// link; empty means DefaultIndexFile.
	IndexFile string
	// Suffix overrides PageSuffix when non-empty.
	Suffix string
}

// NewLinkContext wraps a resolved bag with default URL settings.
func NewLinkContext(bag *Bag) *LinkContext {
	return &LinkContext{Bag: bag}
}

func (lc *LinkContext) pageSuffix() string {
	if lc.Suffix != "" {
		return lc.Suffix
	}
	return PageSuffix
}

func (lc *LinkContext) indexFile() string {
	if lc.IndexFile != "" {
		return lc.IndexFile
	}
	return DefaultIndexFile
}

// ResolveLink resolves a path reference written inside scope (typically
// lifted from a doc comment) and returns its URL. The second result is
// false when the reference does not resolve or the resolved item has no
// addressable page.
func (lc *LinkContext) ResolveLink(scope, path Path) (string, bool) {
	it := lc.Bag.Resolve(scope, path, true)
	if it == nil {
		return "", false
	}
	link := lc.LinkForItem(it, false, false)
	return link, link != ""
}

// LinkForItem computes the URL of an item. With canonical set the link
// points at the declaration site rather than the exposed location. With
// wantFilename set, directory-style module links get the index filename
// appended so the result names a concrete file.
//
// Kinds without a page of their own link to the parent page with an
// "#item.<name>" anchor, ".<cfg>" appended when the item is a non-default
// cfg variant.
func (lc *LinkContext) LinkForItem(it *Item, canonical, wantFilename bool) string {
	path := it.Path
	if canonical {
		path = it.DefinedIn
	}

	if !it.Kind.OwnsPage() {
		parent := lc.Bag.Get(path.Parent())
		if parent == nil {
			return ""
		}
		link := lc.LinkForItem(parent, canonical, wantFilename)
		if link == "" {
			return ""
		}
		anchor := "#item." + path.Last()
		if it.CfgIndex != 0 {
			anchor = fmt.Sprintf("%s.%d", anchor, it.CfgIndex)
		}
		return link + anchor
	}

	var sb strings.Builder
	segs := path.Segments()
	for i, seg := range segs {
		sb.WriteByte('/')
		sb.WriteString(seg)
		if i == len(segs)-1 && it.CfgIndex != 0 {
			fmt.Fprintf(&sb, ".%d", it.CfgIndex)
		}
	}
	if it.Kind == KindModule {
		sb.WriteByte('/')
		if wantFilename {
			sb.WriteString(lc.indexFile())
		}
	} else {
		sb.WriteString(lc.pageSuffix())
	}
	return sb.String()
}
