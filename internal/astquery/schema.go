// Package astquery exposes parsed ASTResults to a SQL host: a row-batch
// table producer (spec.md §4.7) and a one-struct-per-file scalar producer
// (spec.md §4.8), both over the flat column schema spec.md §6 fixes as a
// contract.
//
// Grounded on the teacher's internal/mcp result-shaping helpers (turning
// internal Go structs into the wire shape a caller expects) generalized
// from MCP JSON responses to this system's columnar batch shape, and on
// hostapi.VectorBatch (SPEC_FULL.md) as the abstract sink.
package astquery

// ColumnNames is the flat table schema of spec.md §6, in contractual order.
var ColumnNames = []string{
	"node_id", "type", "name", "file_path", "language",
	"start_line", "start_column", "end_line", "end_column",
	"parent_id", "depth", "sibling_index", "children_count", "descendant_count",
	"peek", "semantic_type", "universal_flags", "arity_bin", "native",
}
