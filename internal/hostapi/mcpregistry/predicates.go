package mcpregistry

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/astengine/internal/semtype"
)

// codeSchema is the shared input shape for the single-code scalar tools.
var codeSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"code": {Type: "integer", Description: "A semantic_type UTINYINT code"},
	},
	Required: []string{"code"},
}

type codeParams struct {
	Code uint8 `json:"code"`
}

type nameParams struct {
	Name string `json:"name"`
}

type semanticTypeMatchParams struct {
	Code    uint8  `json:"code"`
	Pattern string `json:"pattern"`
}

type kindParams struct {
	Code uint8  `json:"code"`
	Kind string `json:"kind"`
}

// registerPredicateTools wires the taxonomy lookup and category-predicate
// scalars of spec.md §6 as MCP tools, one per row of the SQL surface
// table's scalar section.
func (r *Registry) registerPredicateTools() {
	r.server.AddTool(&mcp.Tool{
		Name:        "semantic_type_to_string",
		Description: "Return a semantic_type code's canonical taxonomy name.",
		InputSchema: codeSchema,
	}, wrapCode(func(c semtype.Code) any { return semtype.Name(c) }))

	r.server.AddTool(&mcp.Tool{
		Name:        "get_super_kind",
		Description: "Return the name of a code's containing super-kind band.",
		InputSchema: codeSchema,
	}, wrapCode(func(c semtype.Code) any { return semtype.SuperKindName(c) }))

	r.server.AddTool(&mcp.Tool{
		Name:        "get_kind",
		Description: "Return the name of a code's containing kind band.",
		InputSchema: codeSchema,
	}, wrapCode(func(c semtype.Code) any { return semtype.KindName(c) }))

	r.server.AddTool(&mcp.Tool{
		Name:        "semantic_type_code",
		Description: "Reverse lookup: canonical name to its semantic_type code. NULL (255, Unknown) for unrecognized names.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{"name": {Type: "string"}},
			Required:   []string{"name"},
		},
	}, r.handleSemanticTypeCode)

	r.server.AddTool(&mcp.Tool{
		Name:        "is_semantic_type",
		Description: "Match a code against a taxonomy pattern: its exact name, its kind name, or its super-kind name.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"code":    {Type: "integer"},
				"pattern": {Type: "string"},
			},
			Required: []string{"code", "pattern"},
		},
	}, r.handleIsSemanticType)

	predicates := []struct {
		name string
		desc string
		fn   func(semtype.Code) bool
	}{
		{"is_definition", "Any DEFINITION_* super-type.", semtype.IsDefinition},
		{"is_call", "Specifically COMPUTATION_CALL.", semtype.IsCall},
		{"is_control_flow", "Any FlowControl-kind super-type.", semtype.IsControlFlow},
		{"is_identifier", "Specifically NAME_IDENTIFIER.", semtype.IsIdentifier},
		{"is_literal", "Any Literal-kind super-type.", semtype.IsLiteral},
		{"is_operator", "Any Operator-kind super-type.", semtype.IsOperator},
		{"is_parser_specific", "Any ParserSpecific-kind super-type.", semtype.IsParserSpecific},
		{"is_punctuation", "Specifically PARSER_PUNCTUATION.", semtype.IsPunctuation},
	}
	for _, p := range predicates {
		p := p
		r.server.AddTool(&mcp.Tool{
			Name:        p.name,
			Description: p.desc,
			InputSchema: codeSchema,
		}, wrapCode(func(c semtype.Code) any { return p.fn(c) }))
	}

	r.server.AddTool(&mcp.Tool{
		Name:        "is_kind",
		Description: "Whether a code belongs to the named kind (e.g. \"DEFINITION\", \"FLOW_CONTROL\").",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"code": {Type: "integer"},
				"kind": {Type: "string"},
			},
			Required: []string{"code", "kind"},
		},
	}, r.handleIsKind)
}

// wrapCode adapts a Code -> result function into an MCP tool handler,
// sharing the single codeParams decode step every one of these scalars
// needs (spec.md §6's predicate row: "Category predicates").
func wrapCode(fn func(semtype.Code) any) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var p codeParams
		if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
			return errorResponse("semantic-type-scalar", err)
		}
		return jsonResponse(map[string]any{"result": fn(semtype.Code(p.Code))})
	}
}

func (r *Registry) handleSemanticTypeCode(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p nameParams
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("semantic_type_code", err)
	}
	code := semtype.CodeOf(p.Name)
	if code == semtype.Unknown {
		return jsonResponse(map[string]any{"result": nil})
	}
	return jsonResponse(map[string]any{"result": uint8(code)})
}

func (r *Registry) handleIsSemanticType(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p semanticTypeMatchParams
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("is_semantic_type", err)
	}
	c := semtype.Code(p.Code)
	match := semtype.Name(c) == p.Pattern || semtype.KindName(c) == p.Pattern || semtype.SuperKindName(c) == p.Pattern
	return jsonResponse(map[string]any{"result": match})
}

func (r *Registry) handleIsKind(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p kindParams
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("is_kind", err)
	}
	return jsonResponse(map[string]any{"result": semtype.IsKind(semtype.Code(p.Code), p.Kind)})
}
