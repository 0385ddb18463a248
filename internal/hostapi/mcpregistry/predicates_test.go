package mcpregistry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/astengine/internal/hostapi/osfs"
	"github.com/standardbeagle/astengine/internal/langadapter"
	"github.com/standardbeagle/astengine/internal/semtype"
)

func newTestRegistry() *Registry {
	return New(osfs.NewFS(), osfs.NewWorkerPool(1), langadapter.NewRegistry())
}

func callTool(t *testing.T, handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), args any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	res, err := handler(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: raw},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("Content[0] is not *mcp.TextContent: %#v", res.Content[0])
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return out
}

func TestHandleSemanticTypeCode_KnownAndUnknownNames(t *testing.T) {
	r := newTestRegistry()

	name := semtype.Name(semtype.AllCodes()[0])
	got := callTool(t, r.handleSemanticTypeCode, nameParams{Name: name})
	if got["result"] == nil {
		t.Errorf("expected a resolved code for %q, got nil", name)
	}

	got = callTool(t, r.handleSemanticTypeCode, nameParams{Name: "not-a-real-name"})
	if got["result"] != nil {
		t.Errorf("expected nil result for unknown name, got %v", got["result"])
	}
}

func TestHandleIsSemanticType_MatchesAtEveryGranularity(t *testing.T) {
	r := newTestRegistry()
	c := semtype.AllCodes()[0]

	exact := callTool(t, r.handleIsSemanticType, semanticTypeMatchParams{Code: uint8(c), Pattern: semtype.Name(c)})
	if exact["result"] != true {
		t.Errorf("exact-name match = %v, want true", exact["result"])
	}

	kind := callTool(t, r.handleIsSemanticType, semanticTypeMatchParams{Code: uint8(c), Pattern: semtype.KindName(c)})
	if kind["result"] != true {
		t.Errorf("kind-name match = %v, want true", kind["result"])
	}

	superKind := callTool(t, r.handleIsSemanticType, semanticTypeMatchParams{Code: uint8(c), Pattern: semtype.SuperKindName(c)})
	if superKind["result"] != true {
		t.Errorf("super-kind-name match = %v, want true", superKind["result"])
	}

	none := callTool(t, r.handleIsSemanticType, semanticTypeMatchParams{Code: uint8(c), Pattern: "definitely-not-a-taxonomy-name"})
	if none["result"] != false {
		t.Errorf("unmatched pattern = %v, want false", none["result"])
	}
}

func TestHandleIsKind_DelegatesToSemtypeIsKind(t *testing.T) {
	r := newTestRegistry()
	c := semtype.AllCodes()[0]

	got := callTool(t, r.handleIsKind, kindParams{Code: uint8(c), Kind: semtype.KindName(c)})
	if got["result"] != semtype.IsKind(c, semtype.KindName(c)) {
		t.Errorf("is_kind(%v, %q) = %v, want %v", c, semtype.KindName(c), got["result"], semtype.IsKind(c, semtype.KindName(c)))
	}
}

func TestWrapCode_DispatchesToUnderlyingPredicate(t *testing.T) {
	handler := wrapCode(func(c semtype.Code) any { return semtype.Name(c) })

	c := semtype.AllCodes()[0]
	got := callTool(t, handler, codeParams{Code: uint8(c)})
	if got["result"] != semtype.Name(c) {
		t.Errorf("wrapCode result = %v, want %v", got["result"], semtype.Name(c))
	}
}

func TestHandleSupportedLanguages_ReturnsNonEmptyList(t *testing.T) {
	r := newTestRegistry()
	got := callTool(t, r.handleSupportedLanguages, struct{}{})

	langs, ok := got["languages"].([]any)
	if !ok || len(langs) == 0 {
		t.Fatalf("languages = %#v, want a non-empty list", got["languages"])
	}
}

func TestHandleSemanticTypeCodes_CoversEveryCode(t *testing.T) {
	r := newTestRegistry()
	got := callTool(t, r.handleSemanticTypeCodes, struct{}{})

	codes, ok := got["codes"].([]any)
	if !ok {
		t.Fatalf("codes = %#v, want a list", got["codes"])
	}
	if len(codes) != len(semtype.AllCodes()) {
		t.Errorf("len(codes) = %d, want %d", len(codes), len(semtype.AllCodes()))
	}
}
