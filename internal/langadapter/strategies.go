package langadapter

import (
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

// Sanitize replaces invalid UTF-8 byte sequences with "?" (spec.md §3
// invariant 5: "every string field is valid UTF-8; invalid bytes are
// replaced with ?").
func Sanitize(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			sb.WriteByte('?')
			b = b[1:]
			continue
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// applyStrategy implements the name-extraction strategies of spec.md §4.2.
func applyStrategy(strategy nodeconfig.ExtractionStrategy, node treeparse.Node, source []byte) string {
	switch strategy {
	case nodeconfig.None:
		return ""
	case nodeconfig.NodeText:
		return Sanitize(node.Text())
	case nodeconfig.FirstChild:
		if c, ok := node.NamedChild(0); ok {
			return Sanitize(c.Text())
		}
		return ""
	case nodeconfig.FindIdentifier:
		if n, ok := findDescendant(node, isIdentifierKind); ok {
			return Sanitize(n.Text())
		}
		return ""
	case nodeconfig.FindProperty:
		for _, field := range []string{"name", "property", "key"} {
			if c, ok := node.ChildByFieldName(field); ok {
				return Sanitize(c.Text())
			}
		}
		return ""
	case nodeconfig.FindAssignmentTarget:
		if c, ok := node.ChildByFieldName("left"); ok {
			return Sanitize(c.Text())
		}
		if c, ok := node.NamedChild(0); ok {
			return Sanitize(c.Text())
		}
		return ""
	case nodeconfig.Custom:
		// Custom has no per-language routine here: it yields the node's own
		// text. A language's qualifyName hook is applied separately, by
		// base.ExtractName, to entries whose NativeStrategy is
		// NativeQualifiedName.
		return Sanitize(node.Text())
	default:
		return ""
	}
}

func isIdentifierKind(kind string) bool {
	switch kind {
	case "identifier", "name", "type_identifier", "field_identifier",
		"property_identifier", "simple_identifier", "variable_name":
		return true
	}
	return false
}

// findDescendant searches for the first node whose kind satisfies match:
// node's direct children (named or anonymous) first, then each child's
// subtree in turn, recursively. Bounded to a few levels to keep the hot path cheap —
// FIND_IDENTIFIER rarely needs more (spec.md §4.2 describes this as a
// "where in the subtree" lookup, not an unbounded walk).
func findDescendant(node treeparse.Node, match func(string) bool) (treeparse.Node, bool) {
	return findDescendantDepth(node, match, 4)
}

func findDescendantDepth(node treeparse.Node, match func(string) bool, depth int) (treeparse.Node, bool) {
	if depth == 0 {
		return treeparse.Node{}, false
	}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		c, ok := node.Child(i)
		if !ok {
			continue
		}
		if match(c.Kind()) {
			return c, true
		}
	}
	for i := uint(0); i < count; i++ {
		c, ok := node.Child(i)
		if !ok {
			continue
		}
		if found, ok := findDescendantDepth(c, match, depth-1); ok {
			return found, true
		}
	}
	return treeparse.Node{}, false
}

// ExtractQualifiedName builds a dotted display name from leaf by following
// node's "scope" field chain (node.scope, then that node's scope, ...) for
// as long as each scope's kind is one of qualifierKinds, prefixing each
// scope's text. Enclosing (parent) nodes are not examined.
//
// Supplemented from original_source/src/include/language_adapter.hpp's
// ExtractQualifiedIdentifierName / ExtractNameFromQualifiedNode /
// ExtractNameFromDeclarator (SPEC_FULL.md, "Supplemented features" item 2;
// not re-verifiable on disk, see SPEC_FULL.md's provenance note).
func ExtractQualifiedName(node treeparse.Node, source []byte, leaf string, qualifierKinds ...string) string {
	parts := []string{leaf}
	cur := node
	for {
		parent, ok := cur.ChildByFieldName("scope")
		if !ok {
			break
		}
		if !containsKind(qualifierKinds, parent.Kind()) {
			break
		}
		parts = append([]string{Sanitize(parent.Text())}, parts...)
		cur = parent
	}
	return strings.Join(parts, ".")
}

func containsKind(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
