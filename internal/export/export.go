// Package export writes resolution artifacts that downstream tooling
// consumes without re-running the resolver.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"

	"github.com/CyberFlameGO/alumina/internal/doc"
)

// LinkEntry describes one resolved symbol in the link map.
type LinkEntry struct {
	Path      string `json:"path"`
	Kind      string `json:"kind"`
	DefinedIn string `json:"defined_in"`
	CfgIndex  int    `json:"cfg_index,omitempty"`
	Link      string `json:"link"`
	Exported  bool   `json:"exported"`
}

// BuildLinkMap flattens a resolved bag into link entries, one per item with
// an addressable page, in the bag's sorted order.
func BuildLinkMap(bag *doc.Bag, links *doc.LinkContext) []LinkEntry {
	out := make([]LinkEntry, 0, bag.Len())
	for _, it := range bag.All() {
		link := links.LinkForItem(it, false, false)
		if link == "" {
			continue
		}
		out = append(out, LinkEntry{
			Path:      it.Path.String(),
			Kind:      it.Kind.String(),
			DefinedIn: it.DefinedIn.String(),
			CfgIndex:  it.CfgIndex,
			Link:      link,
			Exported:  it.IsExported(),
		})
	}
	return out
}

// WriteLinkMap stores entries as zstd-compressed JSON at path.
func WriteLinkMap(path string, entries []LinkEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Deterministic artifact regardless of caller ordering.
	sorted := make([]LinkEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].CfgIndex < sorted[j].CfgIndex
	})

	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}
	if err := json.NewEncoder(w).Encode(sorted); err != nil {
		w.Close()
		return fmt.Errorf("encoding link map: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing link map: %w", err)
	}
	return nil
}

// ReadLinkMap loads a link map written by WriteLinkMap.
func ReadLinkMap(path string) ([]LinkEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening link map %s: %w", path, err)
	}
	defer f.Close()

	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing link map %s: %w", path, err)
	}

	var entries []LinkEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding link map %s: %w", path, err)
	}
	return entries, nil
}
