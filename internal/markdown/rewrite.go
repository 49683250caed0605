// Package markdown hyperlinks cross-references in doc comments. Alumina doc
// comments may link to items by path, `[Vector](std::collections::Vector)`
// or just `[push](Vector::push)` relative to the enclosing scope; this
// package rewrites such destinations to the resolved page URLs.
package markdown

import (
	"regexp"
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"

	"github.com/CyberFlameGO/alumina/internal/doc"
)

// itemRefRe matches destinations that can be an Alumina item path: name
// segments joined by "::". Anything else (URLs, anchors, relative files)
// is left alone.
var itemRefRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)

// RewriteDocRefs rewrites item-path link destinations in src to resolved
// URLs, resolving each reference inside scope. Destinations that do not
// look like item paths, or do not resolve, are preserved untouched. The
// rewrite is a targeted string replacement so the original formatting of
// the comment survives.
func RewriteDocRefs(src string, scope doc.Path, links *doc.LinkContext) string {
	refs := collectItemRefs(src)
	if len(refs) == 0 {
		return src
	}

	type replacement struct {
		oldDest string
		newDest string
	}
	var replacements []replacement
	for _, ref := range refs {
		url, ok := links.ResolveLink(scope, doc.ParsePath(ref))
		if !ok {
			continue
		}
		replacements = append(replacements, replacement{ref, url})
	}
	if len(replacements) == 0 {
		return src
	}

	result := src

	// Inline links: [text](destination) — one pass per replacement
	for _, r := range replacements {
		result = strings.ReplaceAll(result, "]("+r.oldDest+")", "]("+r.newDest+")")
	}

	// Reference-style definitions: [ref]: destination — single pass over lines
	refMap := make(map[string]string, len(replacements))
	for _, r := range replacements {
		refMap["]: "+r.oldDest] = "]: " + r.newDest
	}
	lines := strings.Split(result, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for oldSuffix, newSuffix := range refMap {
			if strings.HasSuffix(trimmed, oldSuffix) {
				lines[i] = strings.Replace(line, oldSuffix, newSuffix, 1)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// collectItemRefs parses src and returns the unique link destinations that
// look like item paths, in first-appearance order.
func collectItemRefs(src string) []string {
	tree := gm.Parse([]byte(src), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	seen := make(map[string]bool)
	var refs []string
	ast.WalkFunc(tree, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if link, ok := node.(*ast.Link); ok {
			dest := string(link.Destination)
			if itemRefRe.MatchString(dest) && !seen[dest] {
				seen[dest] = true
				refs = append(refs, dest)
			}
		}
		return ast.GoToNext
	})
	return refs
}
