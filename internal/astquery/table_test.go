package astquery

import (
	"testing"

	"github.com/standardbeagle/astengine/internal/astparse"
	"github.com/standardbeagle/astengine/internal/hostapi"
)

type fakeBatch struct {
	size    int
	columns map[string][]any
	valid   map[string]hostapi.Validity
}

func newFakeBatch(size int) *fakeBatch {
	return &fakeBatch{size: size, columns: map[string][]any{}, valid: map[string]hostapi.Validity{}}
}

func (b *fakeBatch) Size() int { return b.size }

func (b *fakeBatch) SetColumn(name string, values []any, valid hostapi.Validity) error {
	b.columns[name] = values
	b.valid[name] = valid
	return nil
}

func sampleResults() []*astparse.ASTResult {
	return []*astparse.ASTResult{
		{
			Source:    astparse.Source{FilePath: "a.go", Language: "go"},
			Nodes: []astparse.ASTNode{
				{NodeID: 0, TypeRaw: "source_file", ParentID: -1, Name: ""},
				{NodeID: 1, TypeRaw: "identifier", ParentID: 0, Name: "f"},
			},
			NodeCount: 2,
		},
	}
}

func TestTableProducer_NullRuleForEmptyNameAndPeekAndRootParent(t *testing.T) {
	p := NewTableProducer(sampleResults())
	batch := newFakeBatch(BatchSize)
	n, err := p.Next(batch)
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("rows produced = %d, want 2", n)
	}
	if batch.valid["name"][0] {
		t.Errorf("root node's empty name should be invalid (NULL)")
	}
	if !batch.valid["name"][1] {
		t.Errorf("non-empty name should be valid")
	}
	if batch.valid["parent_id"][0] {
		t.Errorf("root's parent_id (-1) should be invalid (NULL)")
	}
	if !batch.valid["parent_id"][1] {
		t.Errorf("non-root parent_id should be valid")
	}
	if batch.valid["peek"][0] || batch.valid["peek"][1] {
		t.Errorf("empty peek should be invalid (NULL)")
	}
	if !p.Done() {
		t.Errorf("expected producer to be drained after one batch covering all rows")
	}
}

func TestTableProducer_BatchSizeSplitsAcrossCalls(t *testing.T) {
	p := NewTableProducer(sampleResults())
	batch := newFakeBatch(1)
	n1, err := p.Next(batch)
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if n1 != 1 {
		t.Fatalf("first batch rows = %d, want 1", n1)
	}
	if p.Done() {
		t.Fatalf("producer should not be done after partial batch")
	}
	n2, err := p.Next(batch)
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if n2 != 1 {
		t.Fatalf("second batch rows = %d, want 1", n2)
	}
	if !p.Done() {
		t.Fatalf("producer should be done after draining both rows")
	}
}

func TestToFileRecords_NullFieldsBecomePointers(t *testing.T) {
	records := ToFileRecords(sampleResults())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	nodes := records[0].Nodes
	if nodes[0].Name != nil {
		t.Errorf("root node's empty name should be nil, got %v", *nodes[0].Name)
	}
	if nodes[0].ParentID != nil {
		t.Errorf("root node's parent_id should be nil, got %v", *nodes[0].ParentID)
	}
	if nodes[1].Name == nil || *nodes[1].Name != "f" {
		t.Errorf("non-root node's name should be \"f\"")
	}
}
