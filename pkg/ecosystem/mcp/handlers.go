package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ormasoftchile/fixt/pkg/fixtures"
	"github.com/ormasoftchile/fixt/pkg/parametrize"
	"github.com/ormasoftchile/fixt/pkg/reader"
	"github.com/ormasoftchile/fixt/pkg/record"
)

// loadSet reads the fixture named by the request's path/format/where
// arguments. The path is used as given; relative paths resolve against
// the server's working directory.
func loadSet(args map[string]any) (*record.Set, error) {
	path, _ := args["path"].(string)
	if path == "" {
		return nil, fmt.Errorf("path argument is required")
	}
	where, _ := args["where"].(string)
	format, _ := args["format"].(string)

	cfg := parametrize.Config{
		Format: reader.Format(format),
		Dir:    filepath.Dir(path),
		Where:  where,
	}
	return parametrize.Load(filepath.Base(path), cfg)
}

// HandleValidate implements the fixt/validate MCP tool.
func HandleValidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path, _ := args["path"].(string)
	if path == "" {
		return errorResult("path argument is required"), nil
	}

	set, err := loadSet(args)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	ids := "no"
	if set.IDs != nil {
		ids = "yes"
	}
	return textResult(fmt.Sprintf("✓ %s is valid (%d cases, fields %s, ids: %s)", path, set.Len(), set.FieldList(), ids)), nil
}

// HandleRead implements the fixt/read MCP tool.
func HandleRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set, err := loadSet(req.GetArguments())
	if err != nil {
		return errorResult(err.Error()), nil
	}

	out := map[string]any{
		"fields": set.Fields,
		"rows":   set.Rows,
	}
	if set.IDs != nil {
		out["ids"] = set.IDs
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return textResult(string(data)), nil
}

// HandleList implements the fixt/list MCP tool.
func HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	dir, _ := args["dir"].(string)
	dir = fixtures.ResolveDir(dir)

	type entry struct {
		Path   string `json:"path"`
		Format string `json:"format"`
		Cases  int    `json:"cases,omitempty"`
		Error  string `json:"error,omitempty"`
	}

	var entries []entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		format, detectErr := reader.Detect(path)
		if detectErr != nil {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		e := entry{Path: rel, Format: string(format)}
		set, readErr := reader.Read(path, format, "")
		if readErr != nil {
			e.Error = readErr.Error()
		} else {
			e.Cases = set.Len()
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return errorResult(fmt.Sprintf("walk %s: %v", dir, err)), nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	data, _ := json.MarshalIndent(entries, "", "  ")
	return textResult(string(data)), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(msg),
		},
		IsError: true,
	}
}
