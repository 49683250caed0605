package markdown

import (
	"testing"

	"github.com/CyberFlameGO/alumina/internal/doc"
)

func testLinks(t *testing.T) *doc.LinkContext {
	t.Helper()
	bag := doc.NewBag()
	t.Cleanup(bag.Free)

	add := func(kind doc.ItemKind, path string) {
		p := doc.ParsePath(path)
		bag.AddItem(doc.Item{Kind: kind, Path: p, DefinedIn: p})
	}
	add(doc.KindModule, "std")
	add(doc.KindModule, "std::collections")
	add(doc.KindStruct, "std::collections::Vector")
	add(doc.KindMethod, "std::collections::Vector::push")
	return doc.NewLinkContext(bag)
}

func TestRewriteAbsoluteRef(t *testing.T) {
	t.Parallel()

	links := testLinks(t)
	src := "See [Vector](std::collections::Vector) for details."
	got := RewriteDocRefs(src, doc.Path{}, links)
	want := "See [Vector](/std/collections/Vector.html) for details."
	if got != want {
		t.Errorf("got %q", got)
	}
}

func TestRewriteScopeRelativeRef(t *testing.T) {
	t.Parallel()

	links := testLinks(t)
	// Written inside std::collections, a bare name resolves locally.
	src := "Use [Vector](Vector) or [push](Vector::push)."
	got := RewriteDocRefs(src, doc.ParsePath("std::collections"), links)
	want := "Use [Vector](/std/collections/Vector.html) or [push](/std/collections/Vector/push.html)."
	if got != want {
		t.Errorf("got %q", got)
	}
}

func TestRewriteLeavesNonRefsAlone(t *testing.T) {
	t.Parallel()

	links := testLinks(t)
	src := "A [site](https://example.com), an [anchor](#section), " +
		"a [file](./other.md) and [nothing](Unknown::Thing)."
	if got := RewriteDocRefs(src, doc.Path{}, links); got != src {
		t.Errorf("non-references were rewritten: %q", got)
	}
}

func TestRewriteReferenceStyle(t *testing.T) {
	t.Parallel()

	links := testLinks(t)
	src := "See [Vector][v].\n\n[v]: std::collections::Vector"
	got := RewriteDocRefs(src, doc.Path{}, links)
	want := "See [Vector][v].\n\n[v]: /std/collections/Vector.html"
	if got != want {
		t.Errorf("got %q", got)
	}
}

func TestRewriteEmpty(t *testing.T) {
	t.Parallel()

	links := testLinks(t)
	if got := RewriteDocRefs("", doc.Path{}, links); got != "" {
		t.Errorf("got %q", got)
	}
}
