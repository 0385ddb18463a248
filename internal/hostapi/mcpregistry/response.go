package mcpregistry

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// jsonResponse wraps data as a single JSON text content block, the same
// shape the teacher's internal/mcp/response.go createJSONResponse returns.
func jsonResponse(data any) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response data: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(content)}},
	}, nil
}

// errorResponse reports a tool failure inline as structured JSON rather
// than a transport-level error, mirroring the teacher's
// createSmartErrorResponse for binder/IO/parse failures surfaced to callers
// that invoke these tools directly (not through a SQL binder).
func errorResponse(operation string, err error) (*mcp.CallToolResult, error) {
	return jsonResponse(map[string]any{
		"success":   false,
		"operation": operation,
		"error":     err.Error(),
	})
}
