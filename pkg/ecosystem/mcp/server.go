// Package mcp exposes fixture inspection as MCP tools for AI agents.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates a new MCP server with fixt tools registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"fixt",
		version,
		server.WithToolCapabilities(true),
	)

	// Register tools
	s.AddTool(
		mcp.NewTool("fixt/validate",
			mcp.WithDescription("Validate a test fixture file (CSV, JSON, JSONL, or YAML) and report its shape"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the fixture file")),
			mcp.WithString("format", mcp.Description("File format: csv, json, jsonl, yaml, or auto")),
		),
		HandleValidate,
	)

	s.AddTool(
		mcp.NewTool("fixt/read",
			mcp.WithDescription("Read a test fixture file and return the normalized (fields, rows, ids) set as JSON"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the fixture file")),
			mcp.WithString("format", mcp.Description("File format: csv, json, jsonl, yaml, or auto")),
			mcp.WithString("where", mcp.Description("Row filter expression, e.g. 'x > 2'")),
		),
		HandleRead,
	)

	s.AddTool(
		mcp.NewTool("fixt/list",
			mcp.WithDescription("List fixture files under a directory with their formats and case counts"),
			mcp.WithString("dir", mcp.Description("Fixtures directory (defaults to tests/fixtures)")),
		),
		HandleList,
	)

	return s
}
