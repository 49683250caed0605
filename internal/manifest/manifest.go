// Package manifest reads the declaration manifests produced by the source
// walker. One manifest covers one walked root; its facts are fed into a
// doc.Bag for resolution.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/CyberFlameGO/alumina/internal/doc"
)

// Manifest is the walker's hand-off: the declarations, import directives
// and wildcard imports discovered in a set of source files.
type Manifest struct {
	Files []File `json:"files"`
}

// File groups the facts collected from one source file.
type File struct {
	Path        string       `json:"path"`
	Items       []Item       `json:"items"`
	Aliases     []Alias      `json:"aliases,omitempty"`
	GlobImports []GlobImport `json:"glob_imports,omitempty"`
}

// Item is one declaration record.
type Item struct {
	Kind      string `json:"kind"`
	Path      string `json:"path"`
	DefinedIn string `json:"defined_in,omitempty"` // defaults to Path
	Doc       string `json:"doc,omitempty"`
	CfgIndex  int    `json:"cfg_index,omitempty"`
	HasCfg    bool   `json:"has_cfg,omitempty"`
	Offset    int    `json:"offset"`
	Group     string `json:"group,omitempty"`
}

// Alias is a named import directive.
type Alias struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GlobImport is a wildcard import directive.
type GlobImport struct {
	Scope  string `json:"scope"`
	Target string `json:"target"`
}

// Load decodes a manifest from r.
func Load(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}

// LoadFile decodes the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return m, nil
}

// LoadDir decodes every *.json manifest under dir, concurrently, and merges
// them in filename order so the combined manifest is deterministic.
func LoadDir(ctx context.Context, dir string) (*Manifest, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing manifests in %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no manifests found in %s", dir)
	}
	sort.Strings(entries)

	loaded := make([]*Manifest, len(entries))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range entries {
		g.Go(func() error {
			m, err := LoadFile(path)
			if err != nil {
				return err
			}
			loaded[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Manifest{}
	for _, m := range loaded {
		merged.Files = append(merged.Files, m.Files...)
	}
	return merged, nil
}

// Populate feeds every fact in the manifest into the bag, in manifest
// order. The bag is left unresolved; the caller runs ResolveAll.
func (m *Manifest) Populate(bag *doc.Bag) error {
	for _, file := range m.Files {
		for _, rec := range file.Items {
			kind, err := doc.KindFromString(rec.Kind)
			if err != nil {
				return fmt.Errorf("file %s, item %s: %w", file.Path, rec.Path, err)
			}
			path := doc.ParsePath(rec.Path)
			definedIn := path
			if rec.DefinedIn != "" {
				definedIn = doc.ParsePath(rec.DefinedIn)
			}
			bag.AddItem(doc.Item{
				Kind:      kind,
				Path:      path,
				DefinedIn: definedIn,
				CfgIndex:  rec.CfgIndex,
				HasCfg:    rec.HasCfg,
				Doc:       rec.Doc,
				File:      file.Path,
				Offset:    rec.Offset,
				Group:     rec.Group,
			})
		}
		for _, a := range file.Aliases {
			bag.AddAlias(doc.ParsePath(a.From), doc.ParsePath(a.To))
		}
		for _, gi := range file.GlobImports {
			bag.AddGlobAlias(doc.ParsePath(gi.Scope), doc.ParsePath(gi.Target))
		}
	}
	return nil
}

// Build is the common load-populate-resolve-sort pipeline used by the
// commands: it returns a queryable bag built from every manifest in dir.
func Build(ctx context.Context, dir string) (*doc.Bag, error) {
	m, err := LoadDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	bag := doc.NewBag()
	if err := m.Populate(bag); err != nil {
		bag.Free()
		return nil, err
	}
	if err := bag.ResolveAll(); err != nil {
		bag.Free()
		return nil, err
	}
	bag.Sort()
	return bag, nil
}
