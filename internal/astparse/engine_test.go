package astparse

import (
	"testing"

	"github.com/standardbeagle/astengine/internal/langadapter"
	"github.com/standardbeagle/astengine/internal/semtype"
)

// TestParse_DescendantRange exercises spec.md §8 Scenario A: parsing a small
// Go source (the Go grammar stands in for the scenario's Python snippet —
// both exercise the same descendant-range property) and checking that the
// function node's descendant_count matches the subtree range.
func TestParse_DescendantRange(t *testing.T) {
	src := []byte("package main\n\nfunc f() int {\n\treturn 1\n}\n")
	result, err := Parse(langadapter.NewGo(), src, "f.go", "go", DefaultExtractionConfig())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if result.Nodes[0].NodeID != 0 {
		t.Fatalf("root NodeID = %d, want 0", result.Nodes[0].NodeID)
	}
	if result.Nodes[0].ParentID != -1 {
		t.Fatalf("root ParentID = %d, want -1", result.Nodes[0].ParentID)
	}

	var fn *ASTNode
	for i := range result.Nodes {
		if result.Nodes[i].TypeRaw == "function_declaration" {
			fn = &result.Nodes[i]
			break
		}
	}
	if fn == nil {
		t.Fatal("no function_declaration node found")
	}
	if fn.Name != "f" {
		t.Errorf("function name = %q, want %q", fn.Name, "f")
	}

	lo, hi := fn.NodeID, fn.NodeID+uint64(fn.DescendantCount)
	var count uint64
	for _, n := range result.Nodes {
		if n.NodeID > lo && n.NodeID <= hi {
			count++
		}
	}
	if count != uint64(fn.DescendantCount) {
		t.Errorf("descendant range contains %d nodes, want %d", count, fn.DescendantCount)
	}
}

// TestParse_CountClosure checks spec.md §8 property 3 across every node.
func TestParse_CountClosure(t *testing.T) {
	src := []byte("package main\n\nfunc f(a, b int) int {\n\tif a > b {\n\t\treturn a\n\t}\n\treturn b\n}\n")
	result, err := Parse(langadapter.NewGo(), src, "f.go", "go", DefaultExtractionConfig())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	childrenOf := make(map[int64][]int)
	for i, n := range result.Nodes {
		childrenOf[n.ParentID] = append(childrenOf[n.ParentID], i)
	}
	var check func(i int) uint32
	check = func(i int) uint32 {
		var sum uint32
		for _, c := range childrenOf[int64(i)] {
			sum += 1 + result.Nodes[c].DescendantCount
		}
		return sum
	}
	for i, n := range result.Nodes {
		if got := check(i); got != n.DescendantCount {
			t.Errorf("node %d (%s): descendant_count = %d, want %d", i, n.TypeRaw, n.DescendantCount, got)
		}
	}
}

// TestParse_ParentMonotonicity checks spec.md §8 property 2.
func TestParse_ParentMonotonicity(t *testing.T) {
	src := []byte("package main\n\nvar x = 1\n")
	result, err := Parse(langadapter.NewGo(), src, "x.go", "go", DefaultExtractionConfig())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	for i, n := range result.Nodes {
		if i == 0 {
			if n.ParentID != -1 {
				t.Errorf("root ParentID = %d, want -1", n.ParentID)
			}
			continue
		}
		if n.ParentID < 0 || n.ParentID >= int64(i) {
			t.Errorf("node %d: ParentID = %d, want in [0, %d)", i, n.ParentID, i)
		}
	}
}

// TestParse_SemanticCodeMultipleOfFour checks spec.md §8 property 4.
func TestParse_SemanticCodeMultipleOfFour(t *testing.T) {
	src := []byte("package main\n\nfunc f() {}\n")
	result, err := Parse(langadapter.NewGo(), src, "f.go", "go", DefaultExtractionConfig())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	for i, n := range result.Nodes {
		if uint8(n.SemanticType)%4 != 0 {
			t.Errorf("node %d semantic_type = %d, not a multiple of 4", i, n.SemanticType)
		}
	}
}

// TestParse_PeekSmartShortAndLong checks spec.md §8 Scenario C.
func TestParse_PeekSmartShortAndLong(t *testing.T) {
	short := make([]byte, 30)
	for i := range short {
		short[i] = 'a'
	}
	got := computePeek(PeekSmart, short, 0)
	if got != string(short) {
		t.Errorf("short peek = %q, want full 30-byte slice", got)
	}

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'b'
	}
	got = computePeek(PeekSmart, long, 0)
	if len(got) > 83 {
		t.Errorf("long peek length = %d, want <= 83", len(got))
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("long peek = %q, want a \"...\" suffix", got)
	}
}

// TestParse_PeekCustomNoEllipsis checks spec.md §8 Scenario C's custom case.
func TestParse_PeekCustomNoEllipsis(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'c'
	}
	got := computePeek(PeekCustom, long, 10)
	if len(got) != 10 {
		t.Errorf("custom peek length = %d, want 10", len(got))
	}
	if got[len(got)-3:] == "..." {
		t.Errorf("custom peek must not have an ellipsis, got %q", got)
	}
}

// TestParse_EmptySource checks the empty-source boundary behavior (spec.md
// §8, "Boundary behaviors").
func TestParse_EmptySource(t *testing.T) {
	result, err := Parse(langadapter.NewGo(), []byte(""), "empty.go", "go", DefaultExtractionConfig())
	if err != nil {
		t.Fatalf("Parse returned error on empty source: %v", err)
	}
	if len(result.Nodes) == 0 {
		t.Fatal("expected at least one (root) node for empty source")
	}
	if result.Nodes[0].DescendantCount != uint32(len(result.Nodes)-1) {
		t.Errorf("root descendant_count = %d, want %d", result.Nodes[0].DescendantCount, len(result.Nodes)-1)
	}
}

// TestParse_InvalidUTF8Sanitized checks spec.md §3 invariant 5.
func TestParse_InvalidUTF8Sanitized(t *testing.T) {
	src := append([]byte("package main\n\nvar s = \""), 0xff, 0xfe)
	src = append(src, []byte("\"\n")...)
	result, err := Parse(langadapter.NewGo(), src, "bad.go", "go", DefaultExtractionConfig())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	for _, n := range result.Nodes {
		for _, r := range n.Peek {
			if r == 0xfffd {
				t.Errorf("peek %q retains a Unicode replacement rune instead of '?'", n.Peek)
			}
		}
	}
}

func TestRoundTripNamingHoldsForEveryEmittedCode(t *testing.T) {
	src := []byte("package main\n\nfunc f(a int) int {\n\treturn a\n}\n")
	result, err := Parse(langadapter.NewGo(), src, "f.go", "go", DefaultExtractionConfig())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	for _, n := range result.Nodes {
		name := semtype.Name(n.SemanticType)
		if name == "" {
			t.Errorf("code %d has no registered name", n.SemanticType)
			continue
		}
		if semtype.CodeOf(name) != n.SemanticType {
			t.Errorf("round-trip failed for code %d (%s)", n.SemanticType, name)
		}
	}
}
