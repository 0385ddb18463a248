// Package nodeconfig holds the per-language node configuration table
// described in spec.md §4.2: an immutable mapping from raw grammar node
// name to {semantic type, name-extraction strategy, native-extraction
// strategy, flags}, looked up with a single hash probe per node.
//
// Grounded on original_source/src/include/node_config.hpp (ExtractionStrategy
// enum, NodeConfig struct, ASTNodeFlags bitmask; read earlier in this
// session, not re-verifiable on disk — see SPEC_FULL.md's provenance note).
package nodeconfig

import "github.com/standardbeagle/astengine/internal/semtype"

// ExtractionStrategy selects where in a node's subtree its display name (or
// literal value) comes from (spec.md §4.2).
type ExtractionStrategy uint8

const (
	None ExtractionStrategy = iota
	NodeText
	FirstChild
	FindIdentifier
	FindProperty
	FindAssignmentTarget
	Custom
)

// Flags bit-OR into ASTNode.UniversalFlags (spec.md §3, §4.2).
type Flags uint8

const (
	IsKeyword Flags = 1 << iota
	IsPublic
	IsUnsafe
	// IsKeywordIfLeaf is resolved at materialization time (not stored
	// directly): a node carrying it becomes IsKeyword only if it turns out
	// to have zero children (spec.md §4.2).
	IsKeywordIfLeaf
)

// NativeStrategy selects the optional per-language routine that populates
// ASTNode.Native for function-like nodes (spec.md §4.2/§4.3).
type NativeStrategy uint8

const (
	NativeNone NativeStrategy = iota
	NativeFunctionSignature
	NativeQualifiedName
	NativeAnnotations
)

// Config is one entry of the per-language node configuration table.
type Config struct {
	SemanticType   semtype.Code
	NameStrategy   ExtractionStrategy
	NativeStrategy NativeStrategy
	Flags          Flags
}

// Unconfigured is the fallback entry used when a raw grammar node name is
// absent from a language's table (spec.md §4.2): ParserConstruct semantic
// type, no name extraction, no flags.
var Unconfigured = Config{
	SemanticType:   semtype.ParserConstruct,
	NameStrategy:   None,
	NativeStrategy: NativeNone,
	Flags:          0,
}

// Table is the raw-grammar-name -> Config map for one language; after
// construction it is only read. Each language adapter's constructor builds
// a new Table, so adapters created per file do not share one Table.
type Table map[string]Config

// Lookup performs the single hash probe described in spec.md §4.2, falling
// back to Unconfigured when rawType is not present.
func (t Table) Lookup(rawType string) Config {
	if c, ok := t[rawType]; ok {
		return c
	}
	return Unconfigured
}

// ResolveFlags applies the IsKeywordIfLeaf rule: if the flags carry it and
// the node has zero children, the result gets IsKeyword instead; the
// IsKeywordIfLeaf bit itself is never stored on a materialized node.
func ResolveFlags(f Flags, childCount int) Flags {
	if f&IsKeywordIfLeaf != 0 {
		f &^= IsKeywordIfLeaf
		if childCount == 0 {
			f |= IsKeyword
		}
	}
	return f
}
