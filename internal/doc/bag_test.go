package doc

import "testing"

func item(kind ItemKind, path string, offset int) Item {
	p := ParsePath(path)
	return Item{Kind: kind, Path: p, DefinedIn: p, Offset: offset}
}

func TestAddItemGet(t *testing.T) {
	t.Parallel()

	b := NewBag()
	defer b.Free()

	it := item(KindStruct, "pkg::Color", 10)
	it.Doc = "An RGB color."
	b.AddItem(it)

	got := b.Get(ParsePath("pkg::Color"))
	if got == nil {
		t.Fatal("item not found after AddItem")
	}
	if got.Kind != KindStruct || got.Doc != "An RGB color." {
		t.Errorf("got kind=%v doc=%q", got.Kind, got.Doc)
	}
	if b.Get(ParsePath("pkg::Nope")) != nil {
		t.Error("lookup of absent path returned an item")
	}
}

func TestAddItemDuplicateReplaces(t *testing.T) {
	t.Parallel()

	b := NewBag()
	defer b.Free()

	b.AddItem(item(KindStruct, "pkg::T", 1))
	b.AddItem(item(KindEnum, "pkg::T", 2))

	if b.Len() != 1 {
		t.Fatalf("duplicate left a stale record, Len = %d", b.Len())
	}
	if got := b.Get(ParsePath("pkg::T")); got.Kind != KindEnum {
		t.Errorf("kind after replace = %v", got.Kind)
	}
}

func TestAddItemCfgVariants(t *testing.T) {
	t.Parallel()

	b := NewBag()
	defer b.Free()

	v1 := item(KindFunction, "pkg::f", 5)
	v1.CfgIndex = 1
	v1.HasCfg = true
	b.AddItem(v1)

	v0 := item(KindFunction, "pkg::f", 3)
	v0.HasCfg = true
	b.AddItem(v0)

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want both cfg variants kept", b.Len())
	}
	// Unqualified lookup prefers the default configuration.
	if got := b.Get(ParsePath("pkg::f")); got.CfgIndex != 0 {
		t.Errorf("Get returned cfg %d", got.CfgIndex)
	}
	if got := b.GetCfg(ParsePath("pkg::f"), 1); got == nil || got.CfgIndex != 1 {
		t.Error("GetCfg(1) did not find the variant")
	}
}

func TestFiltered(t *testing.T) {
	t.Parallel()

	b := NewBag()
	defer b.Free()

	b.AddItem(item(KindModule, "a", 0))
	b.AddItem(item(KindStruct, "a::S", 1))
	b.AddItem(item(KindFunction, "a::f", 2))

	fns := b.Filtered(func(it *Item) bool { return it.Kind == KindFunction })
	if len(fns) != 1 || fns[0].Path.String() != "a::f" {
		t.Errorf("Filtered returned %d items", len(fns))
	}
}

func TestSortPrecedence(t *testing.T) {
	t.Parallel()

	b := NewBag()
	defer b.Free()

	// Scope groups first, then kind section (Struct precedes Function in
	// declaration order), then source offset, then name.
	b.AddItem(item(KindFunction, "b::f", 50))
	b.AddItem(item(KindStruct, "b::g", 10))
	b.AddItem(item(KindFunction, "a::h", 5))
	b.Sort()

	want := []string{"a::h", "b::g", "b::f"}
	for i, it := range b.All() {
		if it.Path.String() != want[i] {
			t.Fatalf("position %d = %s, want %s", i, it.Path.String(), want[i])
		}
	}
}

func TestSortOffsetThenName(t *testing.T) {
	t.Parallel()

	b := NewBag()
	defer b.Free()

	b.AddItem(item(KindFunction, "m::z", 10))
	b.AddItem(item(KindFunction, "m::a", 20))
	b.AddItem(item(KindFunction, "m::b", 20))
	b.Sort()

	want := []string{"m::z", "m::a", "m::b"}
	for i, it := range b.All() {
		if it.Path.String() != want[i] {
			t.Fatalf("position %d = %s, want %s", i, it.Path.String(), want[i])
		}
	}
}
