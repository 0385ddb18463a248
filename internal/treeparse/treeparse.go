// Package treeparse is the thin wrapper over the underlying incremental
// parser library that spec.md §1 treats as an external black box: "a
// black box exposing parse(source) -> tree and tree-walking primitives."
// Every language adapter in internal/langadapter goes through this package
// for parsers, trees and nodes, so that tree ownership (spec.md §9, "Tree
// ownership") has exactly one choke point; the adapters use
// github.com/tree-sitter/go-tree-sitter directly only to build their
// grammar handle (tree_sitter.NewLanguage) for NewLanguage.
//
// Grounded on the teacher's internal/parser/parser.go (TreeSitterParser,
// per-language parser pool construction) and
// internal/parser/parser_language_setup.go (per-language grammar wiring),
// both on disk under _examples/standardbeagle-lci/internal/parser.
package treeparse

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Language is the tree-sitter grammar handle for one supported language.
type Language struct {
	Name string
	ts   *tree_sitter.Language
}

func NewLanguage(name string, ts *tree_sitter.Language) *Language {
	return &Language{Name: name, ts: ts}
}

// Parser owns one tree-sitter parser instance. Spec.md §5/§9 require a
// fresh parser per parse task ("Parser objects are NOT shared: each parse
// task constructs one... Attempts to reuse a parser across threads are a
// defect") — Parser is therefore cheap and disposable by design, never
// pooled across goroutines.
type Parser struct {
	lang *Language
	ts   *tree_sitter.Parser
}

// NewParser constructs a fresh, thread-private parser bound to lang
// (spec.md §4.3, LanguageAdapter.new_parser()).
func NewParser(lang *Language) (*Parser, error) {
	p := tree_sitter.NewParser()
	if err := p.SetLanguage(lang.ts); err != nil {
		return nil, err
	}
	return &Parser{lang: lang, ts: p}, nil
}

// Tree is a parsed concrete syntax tree. Close releases the underlying
// tree-sitter resources; callers must not retain Node values after Close.
type Tree struct {
	ts     *tree_sitter.Tree
	source []byte
}

func (t *Tree) Close() {
	if t.ts != nil {
		t.ts.Close()
		t.ts = nil
	}
}

func (t *Tree) RootNode() Node {
	return Node{ts: t.ts.RootNode(), source: t.source}
}

// Parse produces a concrete syntax tree from source, or nil if the
// underlying library returned no tree (spec.md §4.5 step 1, "If the parser
// returns no tree, fail with parse error").
func (p *Parser) Parse(source []byte) *Tree {
	ts := p.ts.Parse(source, nil)
	if ts == nil {
		return nil
	}
	return &Tree{ts: ts, source: source}
}

func (p *Parser) Close() {
	if p.ts != nil {
		p.ts.Close()
		p.ts = nil
	}
}

// Node is a read-only handle into a Tree. It is valid only for the
// lifetime of the owning Tree (spec.md §9: "Nodes never hold raw pointers
// into the tree after materialization; only byte ranges into the source
// buffer").
type Node struct {
	ts     tree_sitter.Node
	source []byte
}

func (n Node) Kind() string     { return n.ts.Kind() }
func (n Node) StartByte() uint  { return n.ts.StartByte() }
func (n Node) EndByte() uint    { return n.ts.EndByte() }
func (n Node) IsNamed() bool    { return n.ts.IsNamed() }
func (n Node) IsError() bool    { return n.ts.IsError() }
func (n Node) IsMissing() bool  { return n.ts.IsMissing() }
func (n Node) ChildCount() uint { return n.ts.ChildCount() }

func (n Node) StartPosition() (row, column uint) {
	p := n.ts.StartPosition()
	return p.Row, p.Column
}

func (n Node) EndPosition() (row, column uint) {
	p := n.ts.EndPosition()
	return p.Row, p.Column
}

func (n Node) Child(i uint) (Node, bool) {
	c := n.ts.Child(i)
	if c == nil {
		return Node{}, false
	}
	return Node{ts: *c, source: n.source}, true
}

func (n Node) NamedChild(i uint) (Node, bool) {
	c := n.ts.NamedChild(i)
	if c == nil {
		return Node{}, false
	}
	return Node{ts: *c, source: n.source}, true
}

func (n Node) ChildByFieldName(name string) (Node, bool) {
	c := n.ts.ChildByFieldName(name)
	if c == nil {
		return Node{}, false
	}
	return Node{ts: *c, source: n.source}, true
}

// Text returns the raw source slice covered by n; callers are responsible
// for UTF-8 sanitation per spec.md §3 invariant 5.
func (n Node) Text() []byte {
	if int(n.EndByte()) > len(n.source) || n.StartByte() > n.EndByte() {
		return nil
	}
	return n.source[n.StartByte():n.EndByte()]
}
