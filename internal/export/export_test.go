package export

import (
	"path/filepath"
	"testing"

	"github.com/CyberFlameGO/alumina/internal/doc"
)

func TestLinkMapRoundTrip(t *testing.T) {
	t.Parallel()

	bag := doc.NewBag()
	defer bag.Free()
	for _, tc := range []struct {
		kind doc.ItemKind
		path string
	}{
		{doc.KindModule, "std"},
		{doc.KindStruct, "std::Vector"},
		{doc.KindField, "std::Vector::len"},
	} {
		p := doc.ParsePath(tc.path)
		bag.AddItem(doc.Item{Kind: tc.kind, Path: p, DefinedIn: p})
	}
	bag.Sort()

	entries := BuildLinkMap(bag, doc.NewLinkContext(bag))
	if len(entries) != 3 {
		t.Fatalf("built %d entries", len(entries))
	}

	path := filepath.Join(t.TempDir(), "links.json.zst")
	if err := WriteLinkMap(path, entries); err != nil {
		t.Fatalf("WriteLinkMap: %v", err)
	}
	got, err := ReadLinkMap(path)
	if err != nil {
		t.Fatalf("ReadLinkMap: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("round trip lost entries: %d != %d", len(got), len(entries))
	}

	// Written artifact is sorted by path.
	want := []string{"std", "std::Vector", "std::Vector::len"}
	for i, e := range got {
		if e.Path != want[i] {
			t.Errorf("entry %d = %s, want %s", i, e.Path, want[i])
		}
	}
	if got[2].Link != "/std/Vector.html#item.len" {
		t.Errorf("field link = %q", got[2].Link)
	}
}

func TestBuildLinkMapSkipsUnaddressable(t *testing.T) {
	t.Parallel()

	bag := doc.NewBag()
	defer bag.Free()
	// A field whose parent is not in the bag has no page to anchor to.
	p := doc.ParsePath("ghost::Struct::field")
	bag.AddItem(doc.Item{Kind: doc.KindField, Path: p, DefinedIn: p})

	entries := BuildLinkMap(bag, doc.NewLinkContext(bag))
	if len(entries) != 0 {
		t.Errorf("unaddressable item produced %d entries", len(entries))
	}
}
