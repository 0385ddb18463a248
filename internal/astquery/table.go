package astquery

import (
	"github.com/standardbeagle/astengine/internal/astparse"
	"github.com/standardbeagle/astengine/internal/hostapi"
	"github.com/standardbeagle/astengine/internal/semtype"
)

// BatchSize is the host's standard vector size (spec.md §4.7: "Emits up to
// BATCH_SIZE rows per call"). 2048 matches the embedding analytic engine's
// conventional vector size.
const BatchSize = 2048

// TableProducer streams a list of ASTResults as fixed-size row batches
// (spec.md §4.7), maintaining the two cursors the spec names: the current
// result index and the within-result row index.
type TableProducer struct {
	results []*astparse.ASTResult
	resultI int
	rowI    int
}

func NewTableProducer(results []*astparse.ASTResult) *TableProducer {
	return &TableProducer{results: results}
}

// Done reports whether every result has been fully drained.
func (p *TableProducer) Done() bool {
	for p.resultI < len(p.results) && p.rowI >= len(p.results[p.resultI].Nodes) {
		p.resultI++
		p.rowI = 0
	}
	return p.resultI >= len(p.results)
}

// Next fills batch with up to batch.Size() rows (capped at BatchSize),
// advancing the within-result cursor until the current result is drained
// and then the result cursor, per spec.md §4.7. Returns the row count
// written; 0 signals exhaustion.
func (p *TableProducer) Next(batch hostapi.VectorBatch) (int, error) {
	limit := batch.Size()
	if limit <= 0 || limit > BatchSize {
		limit = BatchSize
	}

	cols := make(map[string][]any, len(ColumnNames))
	valid := make(map[string]hostapi.Validity, len(ColumnNames))
	for _, name := range ColumnNames {
		cols[name] = make([]any, 0, limit)
		valid[name] = make(hostapi.Validity, 0, limit)
	}

	var n int
	for n < limit && p.resultI < len(p.results) {
		result := p.results[p.resultI]
		if p.rowI >= len(result.Nodes) {
			p.resultI++
			p.rowI = 0
			continue
		}
		appendRow(cols, valid, result, &result.Nodes[p.rowI])
		p.rowI++
		n++
	}

	for _, name := range ColumnNames {
		if err := batch.SetColumn(name, cols[name], valid[name]); err != nil {
			return n, err
		}
	}
	return n, nil
}

// appendRow appends one node's columns, applying spec.md §4.7's NULL rule:
// "Columns with empty strings become NULL only for name, peek, and
// parent_id (= -1); other strings remain empty strings."
func appendRow(cols map[string][]any, valid map[string]hostapi.Validity, result *astparse.ASTResult, n *astparse.ASTNode) {
	put := func(name string, v any, isValid bool) {
		cols[name] = append(cols[name], v)
		valid[name] = append(valid[name], isValid)
	}

	put("node_id", n.NodeID, true)
	put("type", n.TypeRaw, true)
	put("name", n.Name, n.Name != "")
	put("file_path", result.Source.FilePath, true)
	put("language", result.Source.Language, true)
	put("start_line", n.StartLine, true)
	put("start_column", n.StartColumn, true)
	put("end_line", n.EndLine, true)
	put("end_column", n.EndColumn, true)
	put("parent_id", n.ParentID, n.ParentID != -1)
	put("depth", n.Depth, true)
	put("sibling_index", n.SiblingIndex, true)
	put("children_count", n.ChildrenCount, true)
	put("descendant_count", n.DescendantCount, true)
	put("peek", n.Peek, n.Peek != "")
	put("semantic_type", uint8(n.SemanticType), true)
	put("universal_flags", n.UniversalFlags, true)
	put("arity_bin", n.ArityBin, true)
	put("native", nativeRecord(n.Native), n.Native != nil)
}

func nativeRecord(n *astparse.Native) any {
	if n == nil {
		return nil
	}
	return map[string]any{
		"signature_kind": n.SignatureKind,
		"parameters":     n.Parameters,
		"modifiers":      n.Modifiers,
		"qualified_name": n.QualifiedName,
		"annotations":    n.Annotations,
	}
}

// normalizedTypeName is a small helper table producers can call to recover
// the human-readable category without re-deriving it per node.
func normalizedTypeName(c semtype.Code) string {
	if n := semtype.Name(c); n != "" {
		return n
	}
	return semtype.Name(semtype.ParserConstruct)
}
