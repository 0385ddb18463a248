package astparse

import (
	"github.com/standardbeagle/astengine/internal/asterrors"
	"github.com/standardbeagle/astengine/internal/langadapter"
	"github.com/standardbeagle/astengine/internal/nodeconfig"
	"github.com/standardbeagle/astengine/internal/treeparse"
)

// frame is one entry of the explicit work stack driving the two-phase DFS
// of spec.md §4.5. Each frame is visited twice: once to materialize the
// node and push its children, once more (after they finish) to close out
// descendant_count.
type frame struct {
	node              treeparse.Node
	parentID          int64
	depth             uint32
	siblingIndex      uint32
	processed         bool
	materializedIndex int
}

// Parse runs the spec.md §4.5 parse engine for one file's source against
// adapter a, producing an ASTResult. filePath and language populate
// provenance fields; cfg controls which fields are materialized.
func Parse(a langadapter.Adapter, source []byte, filePath, language string, cfg ExtractionConfig) (*ASTResult, error) {
	parser, err := a.NewParser()
	if err != nil {
		return nil, asterrors.NewParseError(filePath, language, err)
	}
	defer parser.Close()

	tree := parser.Parse(source)
	if tree == nil {
		return nil, asterrors.NewParseError(filePath, language, errNoTree)
	}
	defer tree.Close()

	configs := a.NodeConfigs()
	result := &ASTResult{Source: Source{FilePath: filePath, Language: language}}

	stack := []*frame{{node: tree.RootNode(), parentID: -1, depth: 0, siblingIndex: 0}}
	var maxDepth uint32

	for len(stack) > 0 {
		f := stack[len(stack)-1]

		if !f.processed {
			f.processed = true
			f.materializedIndex = len(result.Nodes)
			if f.depth > maxDepth {
				maxDepth = f.depth
			}

			node := materialize(a, configs, f, filePath, language, source, cfg)
			result.Nodes = append(result.Nodes, node)

			// Push children right-to-left so they pop left-to-right, preserving
			// DFS pre-order (spec.md §4.5 step 3).
			childCount := f.node.ChildCount()
			children := make([]treeparse.Node, 0, childCount)
			for i := uint(0); i < childCount; i++ {
				if c, ok := f.node.Child(i); ok {
					children = append(children, c)
				}
			}
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, &frame{
					node:         children[i],
					parentID:     int64(f.materializedIndex),
					depth:        f.depth + 1,
					siblingIndex: uint32(i),
				})
			}
			continue
		}

		// Second visit: children have all finished, so descendant_count is
		// now knowable (spec.md §4.5 step 3, "Second visit").
		descendants := uint32(len(result.Nodes) - f.materializedIndex - 1)
		result.Nodes[f.materializedIndex].DescendantCount = descendants
		stack = stack[:len(stack)-1]
	}

	result.NodeCount = uint32(len(result.Nodes))
	result.MaxDepth = maxDepth
	return result, nil
}

// materialize performs the first-visit work of spec.md §4.5 step 3 for one
// frame: span/name/peek/semantic/flags/arity/native extraction.
func materialize(a langadapter.Adapter, configs nodeconfig.Table, f *frame, filePath, language string, source []byte, cfg ExtractionConfig) ASTNode {
	raw := f.node.Kind()
	nc := configs.Lookup(raw)

	n := ASTNode{
		NodeID:       uint64(f.materializedIndex),
		TypeRaw:      raw,
		ParentID:     f.parentID,
		Depth:        f.depth,
		SiblingIndex: f.siblingIndex,
		SemanticType: nc.SemanticType,
	}

	childCount := uint32(f.node.ChildCount())
	if cfg.Structure != StructureNone {
		n.ChildrenCount = childCount
		n.ArityBin = arityBin(childCount)
	}

	if cfg.Source != SourceNone {
		n.FilePath = filePath
		n.Language = language
		sr, sc := f.node.StartPosition()
		er, ec := f.node.EndPosition()
		n.StartLine, n.StartColumn = sr+1, sc+1
		n.EndLine, n.EndColumn = er+1, ec+1
	}

	if cfg.Context != ContextNone {
		n.Name = a.ExtractName(f.node, source)
	}
	if cfg.Context == ContextNormalized || cfg.Context == ContextNative {
		n.TypeNormalized = a.NormalizedType(raw)
	}
	if cfg.Context == ContextNative && nc.NativeStrategy != nodeconfig.NativeNone {
		n.Native = extractNative(a, nc, f.node, source)
	}

	flags := nodeconfig.ResolveFlags(nc.Flags, int(childCount))
	n.UniversalFlags = flagsToUniversal(flags)
	if flags&nodeconfig.IsPublic == 0 && a.IsPublic(f.node, source) {
		n.UniversalFlags |= FlagIsPublic
	}

	if cfg.Peek != PeekNone {
		n.Peek = computePeek(cfg.Peek, f.node.Text(), cfg.PeekSize)
	}

	return n
}

func flagsToUniversal(f nodeconfig.Flags) uint8 {
	var out uint8
	if f&nodeconfig.IsKeyword != 0 {
		out |= FlagIsKeyword
	}
	if f&nodeconfig.IsPublic != 0 {
		out |= FlagIsPublic
	}
	if f&nodeconfig.IsUnsafe != 0 {
		out |= FlagIsUnsafe
	}
	return out
}

var errNoTree = &noTreeError{}

type noTreeError struct{}

func (*noTreeError) Error() string { return "underlying parser returned no tree" }
