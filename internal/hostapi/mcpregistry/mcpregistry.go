// Package mcpregistry is the concrete Registration capability of spec.md
// §6 over github.com/modelcontextprotocol/go-sdk: it wraps an *mcp.Server
// and exposes the SQL surface's table/scalar functions as MCP tools with
// JSON-schema-typed parameters, for hosts that talk MCP instead of
// embedding the core directly in a SQL engine.
//
// Grounded on the teacher's internal/mcp/server.go (NewServer, AddTool
// registration pattern) and internal/mcp/response.go (createJSONResponse),
// generalized from LCI's search/context tools to this system's
// read_ast/parse_ast/semantic-type surface (spec.md §6).
package mcpregistry

import (
	"context"
	"encoding/json"
	"runtime"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/astengine/internal/astparse"
	"github.com/standardbeagle/astengine/internal/astquery"
	"github.com/standardbeagle/astengine/internal/hostapi"
	"github.com/standardbeagle/astengine/internal/langadapter"
	"github.com/standardbeagle/astengine/internal/scheduler"
	"github.com/standardbeagle/astengine/internal/semtype"
)

// Registry is the MCP-backed Registration capability. It both satisfies
// hostapi.Registration generically (for callers that only want the
// abstract seam) and, via RegisterCoreTools, wires the concrete AST-engine
// surface as named MCP tools.
type Registry struct {
	server *mcp.Server
	fs     hostapi.Filesystem
	sched  hostapi.Scheduler
	langs  *langadapter.Registry

	scalars map[string]hostapi.ScalarFunc
	tables  map[string]hostapi.TableFunc
}

// New constructs a Registry over fs/sched/langs — the same capability
// trio spec.md §6 calls "host capabilities required" — ready to register
// tools against.
func New(fs hostapi.Filesystem, sched hostapi.Scheduler, langs *langadapter.Registry) *Registry {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "astengine-mcp-server",
		Version: "0.1.0",
	}, nil)
	return &Registry{
		server:  server,
		fs:      fs,
		sched:   sched,
		langs:   langs,
		scalars: make(map[string]hostapi.ScalarFunc),
		tables:  make(map[string]hostapi.TableFunc),
	}
}

// Server returns the underlying MCP server for transport binding.
func (r *Registry) Server() *mcp.Server { return r.server }

var _ hostapi.Registration = (*Registry)(nil)

// RegisterScalar satisfies hostapi.Registration for hosts that want the
// abstract seam rather than an MCP tool.
func (r *Registry) RegisterScalar(name string, fn hostapi.ScalarFunc) error {
	r.scalars[name] = fn
	return nil
}

// RegisterTable satisfies hostapi.Registration for hosts that want the
// abstract seam rather than an MCP tool.
func (r *Registry) RegisterTable(name string, fn hostapi.TableFunc) error {
	r.tables[name] = fn
	return nil
}

// ReadASTParams mirrors read_ast's named parameters (spec.md §6).
type ReadASTParams struct {
	Paths        []string `json:"paths"`
	Language     string   `json:"language,omitempty"`
	IgnoreErrors bool     `json:"ignore_errors,omitempty"`
	PeekSize     int      `json:"peek_size,omitempty"`
	PeekMode     string   `json:"peek_mode,omitempty"`
}

// ParseASTParams mirrors parse_ast(code, language) (spec.md §6).
type ParseASTParams struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	PeekSize int    `json:"peek_size,omitempty"`
	PeekMode string `json:"peek_mode,omitempty"`
}

func peekMode(name string) astparse.PeekMode {
	switch name {
	case "smart", "auto", "":
		return astparse.PeekSmart
	case "full":
		return astparse.PeekFull
	case "none":
		return astparse.PeekNone
	case "custom":
		return astparse.PeekCustom
	default:
		return astparse.PeekSmart
	}
}

func extractionConfig(mode string, peekSize int) astparse.ExtractionConfig {
	cfg := astparse.DefaultExtractionConfig()
	cfg.Peek = peekMode(mode)
	if peekSize > 0 {
		cfg.PeekSize = peekSize
	}
	return cfg
}

// RegisterCoreTools registers the concrete AST-engine surface of spec.md
// §6 as MCP tools: read_ast, parse_ast, ast_supported_languages,
// semantic_type_codes, and the scalar taxonomy predicates.
func (r *Registry) RegisterCoreTools() {
	r.server.AddTool(&mcp.Tool{
		Name:        "read_ast",
		Description: "Auto-detect language and emit flat AST rows for one or more file paths or glob patterns.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"paths":         {Type: "array", Items: &jsonschema.Schema{Type: "string"}, Description: "File path(s) or glob pattern(s)"},
				"language":      {Type: "string", Description: "Force a single language instead of auto-detecting per file"},
				"ignore_errors": {Type: "boolean", Description: "Skip failed files instead of aborting"},
				"peek_size":     {Type: "integer", Description: "Bytes per peek when peek_mode=\"custom\""},
				"peek_mode":     {Type: "string", Description: "\"auto\" | \"smart\" | \"full\" | \"none\" | \"custom\""},
			},
			Required: []string{"paths"},
		},
	}, r.handleReadAST)

	r.server.AddTool(&mcp.Tool{
		Name:        "parse_ast",
		Description: "Parse one in-memory source string and emit its flat AST rows.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"code":      {Type: "string", Description: "Inline source text"},
				"language":  {Type: "string", Description: "Language name or alias"},
				"peek_size": {Type: "integer"},
				"peek_mode": {Type: "string"},
			},
			Required: []string{"code", "language"},
		},
	}, r.handleParseAST)

	r.server.AddTool(&mcp.Tool{
		Name:        "ast_supported_languages",
		Description: "Emit one row per supported language name.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, r.handleSupportedLanguages)

	r.server.AddTool(&mcp.Tool{
		Name:        "semantic_type_codes",
		Description: "Emit every taxonomy code with its canonical name.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, r.handleSemanticTypeCodes)

	r.registerPredicateTools()
}

func (r *Registry) handleReadAST(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p ReadASTParams
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("read_ast", err)
	}

	opts := scheduler.Options{
		Language:     p.Language,
		IgnoreErrors: p.IgnoreErrors,
		Config:       extractionConfig(p.PeekMode, p.PeekSize),
	}
	result, err := scheduler.RunPatterns(r.fs, r.sched, r.langs, p.Paths, opts, runtime.NumCPU())
	if err != nil {
		return errorResponse("read_ast", err)
	}

	return jsonResponse(map[string]any{
		"rows":               flattenRows(result.Results),
		"files_processed":    result.FilesProcessed,
		"total_nodes":        result.TotalNodes,
		"errors_encountered": result.ErrorsEncountered,
		"error_messages":     result.ErrorMessages,
	})
}

func (r *Registry) handleParseAST(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p ParseASTParams
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("parse_ast", err)
	}

	adapter, err := r.langs.New(p.Language)
	if err != nil {
		return errorResponse("parse_ast", err)
	}
	cfg := extractionConfig(p.PeekMode, p.PeekSize)
	result, err := astparse.Parse(adapter, []byte(p.Code), "<inline>", p.Language, cfg)
	if err != nil {
		return errorResponse("parse_ast", err)
	}

	return jsonResponse(map[string]any{"rows": flattenRows([]*astparse.ASTResult{result})})
}

func (r *Registry) handleSupportedLanguages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResponse(map[string]any{"languages": r.langs.SupportedLanguages()})
}

func (r *Registry) handleSemanticTypeCodes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rows := make([]map[string]any, 0, 64)
	for _, c := range semtype.AllCodes() {
		rows = append(rows, map[string]any{"code": uint8(c), "name": semtype.Name(c)})
	}
	return jsonResponse(map[string]any{"codes": rows})
}

// flattenRows converts parsed results into the flat-table JSON shape
// (spec.md §6, "Flat table schema") for MCP transport, reusing astquery's
// column contract rather than re-deriving row shape ad hoc.
func flattenRows(results []*astparse.ASTResult) []map[string]any {
	rows := make([]map[string]any, 0)
	for _, rec := range astquery.ToFileRecords(results) {
		for _, n := range rec.Nodes {
			row := map[string]any{
				"node_id": n.NodeID, "type": n.Type,
				"file_path": rec.FilePath, "language": rec.Language,
				"start_line": n.StartLine, "start_column": n.StartColumn,
				"end_line": n.EndLine, "end_column": n.EndColumn,
				"depth": n.Depth, "sibling_index": n.SiblingIndex,
				"children_count": n.ChildrenCount, "descendant_count": n.DescendantCount,
				"semantic_type": n.SemanticType, "universal_flags": n.UniversalFlags,
				"arity_bin": n.ArityBin,
			}
			if n.Name != nil {
				row["name"] = *n.Name
			}
			if n.Peek != nil {
				row["peek"] = *n.Peek
			}
			if n.ParentID != nil {
				row["parent_id"] = *n.ParentID
			}
			if n.Native != nil {
				row["native"] = n.Native
			}
			rows = append(rows, row)
		}
	}
	return rows
}
