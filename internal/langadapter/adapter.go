// Package langadapter implements the per-language adapter capability set
// described in spec.md §4.3: a parser factory, raw->normalized type
// mapping, name/value extraction, visibility test, and node configuration
// table, one instance per supported language, plus the process-wide
// registry (§4.4) that resolves names and aliases to adapter factories.
//
// Grounded on the teacher's internal/parser/parser_language_setup.go (the
// per-language tree-sitter grammar wiring this rendition generalizes) and
// internal/parser/community_parser.go (the registry-of-adapters pattern for
// non-standard grammars, used here for Zig).
package langadapter

import (
	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/semtype"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

// Adapter is the capability set spec.md §4.3 requires of every language.
type Adapter interface {
	LanguageName() string
	Aliases() []string
	NewParser() (*treeparse.Parser, error)
	NormalizedType(raw string) string
	ExtractName(node treeparse.Node, source []byte) string
	ExtractValue(node treeparse.Node, source []byte) string
	IsPublic(node treeparse.Node, source []byte) bool
	NodeConfigs() nodeconfig.Table
}

// publicityTest is the language-specific visibility rule (e.g. Go's
// leading-capital identifier convention, Java/C#'s `public` modifier).
type publicityTest func(node treeparse.Node, source []byte) bool

// base is the shared implementation backing every concrete language
// adapter; each language file in this package supplies only its node
// configuration table, tree-sitter grammar, and visibility rule — the
// genuinely language-specific parts of spec.md §4.3.
type base struct {
	name       string
	aliases    []string
	lang       *treeparse.Language
	configs    nodeconfig.Table
	isPublic   publicityTest
	qualifyName func(node treeparse.Node, source []byte, leaf string) string
}

func (b *base) LanguageName() string { return b.name }
func (b *base) Aliases() []string    { return b.aliases }

func (b *base) NewParser() (*treeparse.Parser, error) {
	return treeparse.NewParser(b.lang)
}

func (b *base) NodeConfigs() nodeconfig.Table { return b.configs }

// NormalizedType defaults to name(semantic_type(raw_name)) per spec.md §4.3
// item 3.
func (b *base) NormalizedType(raw string) string {
	cfg := b.configs.Lookup(raw)
	if n := semtype.Name(cfg.SemanticType); n != "" {
		return n
	}
	return raw
}

func (b *base) ExtractName(node treeparse.Node, source []byte) string {
	cfg := b.configs.Lookup(node.Kind())
	leaf := applyStrategy(cfg.NameStrategy, node, source)
	if leaf == "" {
		return ""
	}
	if cfg.NativeStrategy == nodeconfig.NativeQualifiedName && b.qualifyName != nil {
		return b.qualifyName(node, source, leaf)
	}
	return leaf
}

func (b *base) ExtractValue(node treeparse.Node, source []byte) string {
	return Sanitize(node.Text())
}

func (b *base) IsPublic(node treeparse.Node, source []byte) bool {
	if b.isPublic == nil {
		return false
	}
	return b.isPublic(node, source)
}
