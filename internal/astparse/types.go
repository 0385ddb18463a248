// Package astparse implements the hot-path parse engine of spec.md §4.5: a
// two-phase explicit-stack DFS pre-order traversal that materializes a flat
// ASTNode array with O(1) descendant ranges, attaching raw and normalized
// typing, peek text, structural fields, and optional native context to every
// node.
//
// Grounded on original_source/src/ast_type.cpp's ParseFile (the two-phase
// stack algorithm this package generalizes to every language adapter) and
// the teacher's internal/parser package for the surrounding Go idiom (error
// wrapping, struct-per-concern layout) — not re-verifiable on disk after the
// _examples/ data loss described in SPEC_FULL.md's provenance note.
package astparse

import "github.com/standardbeagle/astengine/internal/semtype"

// ASTNode is the atomic record of spec.md §3. Every field is populated for
// every node, subject to ExtractionConfig narrowing some to zero values.
type ASTNode struct {
	NodeID          uint64
	TypeRaw         string
	TypeNormalized  string
	Name            string
	FilePath        string
	Language        string
	StartLine       uint32
	StartColumn     uint32
	EndLine         uint32
	EndColumn       uint32
	ParentID        int64 // -1 at root
	Depth           uint32
	SiblingIndex    uint32
	ChildrenCount   uint32
	DescendantCount uint32
	SemanticType    semtype.Code
	UniversalFlags  uint8
	ArityBin        uint8
	Peek            string
	Native          *Native
}

// Universal flag bits (spec.md §3): IsKeywordIfLeaf is resolved before
// storage (nodeconfig.ResolveFlags), so it never appears here.
const (
	FlagIsKeyword uint8 = 1 << iota
	FlagIsPublic
	FlagIsUnsafe
)

// Native is the optional language-specific structure attached to
// function-like nodes (spec.md §3, §4.2 "Native extraction strategies").
type Native struct {
	SignatureKind string
	Parameters    []Parameter
	Modifiers     []string
	QualifiedName string
	Annotations   []string
}

// Parameter describes one entry of Native.Parameters.
type Parameter struct {
	Name     string
	Type     string
	Default  string
	Variadic bool
	Optional bool
}

// Source identifies the file (or in-memory snippet) a result was parsed
// from (spec.md §3, ASTResult.source).
type Source struct {
	FilePath string
	Language string
}

// ASTResult is the per-file output of the parse engine (spec.md §3).
type ASTResult struct {
	Source    Source
	Nodes     []ASTNode
	ParseTime float64 // seconds
	NodeCount uint32
	MaxDepth  uint32
}
