package manifest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CyberFlameGO/alumina/internal/doc"
)

const sampleManifest = `{
  "files": [
    {
      "path": "std/collections/vector.alu",
      "items": [
        {"kind": "module", "path": "std::collections::vector", "offset": 0},
        {"kind": "struct", "path": "std::collections::vector::Vector",
         "doc": "A growable array.", "offset": 120},
        {"kind": "method", "path": "std::collections::vector::Vector::push", "offset": 340}
      ],
      "aliases": [
        {"from": "std::collections::Vector", "to": "std::collections::vector::Vector"}
      ],
      "glob_imports": [
        {"scope": "std::collections", "target": "std::collections::vector"}
      ]
    }
  ]
}`

func TestLoadAndPopulate(t *testing.T) {
	t.Parallel()

	m, err := Load(strings.NewReader(sampleManifest))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Files) != 1 || len(m.Files[0].Items) != 3 {
		t.Fatalf("unexpected shape: %+v", m)
	}

	bag := doc.NewBag()
	defer bag.Free()
	if err := m.Populate(bag); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if err := bag.ResolveAll(); err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}

	vec := bag.Get(doc.ParsePath("std::collections::vector::Vector"))
	if vec == nil || vec.Doc != "A growable array." {
		t.Fatal("struct not populated with doc text")
	}
	if vec.File != "std/collections/vector.alu" || vec.Offset != 120 {
		t.Errorf("declaration site lost: %s:%d", vec.File, vec.Offset)
	}

	// The named re-export materialized a concrete entry.
	if bag.Get(doc.ParsePath("std::collections::Vector")) == nil {
		t.Error("alias not materialized")
	}
	// The glob import resolves unqualified names inside the scope.
	if bag.Resolve(doc.ParsePath("std::collections"), doc.NewPath("Vector"), true) == nil {
		t.Error("glob import not resolvable")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader(`{"files": [], "extra": true}`))
	if err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestPopulateRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	m := &Manifest{Files: []File{{
		Path:  "x.alu",
		Items: []Item{{Kind: "flavor", Path: "a::b"}},
	}}}
	bag := doc.NewBag()
	defer bag.Free()
	if err := m.Populate(bag); err == nil {
		t.Fatal("unknown kind accepted")
	}
}

func TestLoadDirMergesInFilenameOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, "b.json"),
		`{"files":[{"path":"b.alu","items":[{"kind":"struct","path":"b::B","offset":0}]}]}`)
	writeManifest(t, filepath.Join(dir, "a.json"),
		`{"files":[{"path":"a.alu","items":[{"kind":"struct","path":"a::A","offset":0}]}]}`)

	m, err := LoadDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(m.Files) != 2 {
		t.Fatalf("merged %d files", len(m.Files))
	}
	if m.Files[0].Path != "a.alu" || m.Files[1].Path != "b.alu" {
		t.Errorf("merge order: %s, %s", m.Files[0].Path, m.Files[1].Path)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	t.Parallel()

	if _, err := LoadDir(context.Background(), t.TempDir()); err == nil {
		t.Fatal("empty directory accepted")
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, "std.json"), sampleManifest)

	bag, err := Build(context.Background(), dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer bag.Free()

	if bag.Len() == 0 {
		t.Fatal("empty bag")
	}
	// Sorted output is deterministic: scope groups come out ordered.
	all := bag.All()
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if c := prev.Path.Parent().Compare(cur.Path.Parent()); c > 0 {
			t.Fatalf("scope order violated at %d: %s after %s",
				i, cur.Path.String(), prev.Path.String())
		}
	}
}

func writeManifest(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
