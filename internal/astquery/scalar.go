package astquery

import "github.com/standardbeagle/astengine/internal/astparse"

// NodeRecord is one row of the nested struct schema (spec.md §6, "Nested
// struct schema"). Field semantics are identical to the flat table's
// columns (spec.md §4.8: "Identical field semantics to §4.7").
type NodeRecord struct {
	NodeID          uint64
	Type            string
	Name            *string
	StartLine       uint32
	StartColumn     uint32
	EndLine         uint32
	EndColumn       uint32
	ParentID        *int64
	Depth           uint32
	SiblingIndex    uint32
	ChildrenCount   uint32
	DescendantCount uint32
	Peek            *string
	SemanticType    uint8
	UniversalFlags  uint8
	ArityBin        uint8
	Native          *astparse.Native
}

// FileRecord is the scalar struct producer's one-value-per-file shape
// (spec.md §4.8): `{source, nodes: list<record>}`.
type FileRecord struct {
	FilePath string
	Language string
	Nodes    []NodeRecord
}

// ToFileRecords converts every ASTResult to its scalar struct value, for
// callers that want a single column of ASTs rather than a row stream
// (spec.md §4.8).
func ToFileRecords(results []*astparse.ASTResult) []FileRecord {
	out := make([]FileRecord, 0, len(results))
	for _, r := range results {
		out = append(out, toFileRecord(r))
	}
	return out
}

func toFileRecord(r *astparse.ASTResult) FileRecord {
	nodes := make([]NodeRecord, len(r.Nodes))
	for i := range r.Nodes {
		nodes[i] = toNodeRecord(&r.Nodes[i])
	}
	return FileRecord{
		FilePath: r.Source.FilePath,
		Language: r.Source.Language,
		Nodes:    nodes,
	}
}

func toNodeRecord(n *astparse.ASTNode) NodeRecord {
	rec := NodeRecord{
		NodeID:          n.NodeID,
		Type:            n.TypeRaw,
		StartLine:       n.StartLine,
		StartColumn:     n.StartColumn,
		EndLine:         n.EndLine,
		EndColumn:       n.EndColumn,
		Depth:           n.Depth,
		SiblingIndex:    n.SiblingIndex,
		ChildrenCount:   n.ChildrenCount,
		DescendantCount: n.DescendantCount,
		SemanticType:    uint8(n.SemanticType),
		UniversalFlags:  n.UniversalFlags,
		ArityBin:        n.ArityBin,
		Native:          n.Native,
	}
	if n.Name != "" {
		rec.Name = &n.Name
	}
	if n.Peek != "" {
		rec.Peek = &n.Peek
	}
	if n.ParentID != -1 {
		id := n.ParentID
		rec.ParentID = &id
	}
	return rec
}
