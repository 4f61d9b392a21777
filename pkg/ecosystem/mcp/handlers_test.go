package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestHandleValidate_MissingPath(t *testing.T) {
	result, err := HandleValidate(context.Background(), callReq(map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error for missing path")
	}
}

func TestHandleValidate_ValidFixture(t *testing.T) {
	path := writeFixture(t, "data.csv", "a,b\n1,2\n")

	result, err := HandleValidate(context.Background(), callReq(map[string]any{"path": path}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Errorf("expected success, got %v", result.Content)
	}
}

func TestHandleValidate_BadFixture(t *testing.T) {
	path := writeFixture(t, "data.json", `[{"x":1},{"y":2}]`)

	result, err := HandleValidate(context.Background(), callReq(map[string]any{"path": path}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error for mismatched keys")
	}
}

func TestHandleRead_ReturnsNormalizedSet(t *testing.T) {
	path := writeFixture(t, "data.json", `[{"id":"t1","x":1},{"id":"t2","x":2}]`)

	result, err := HandleRead(context.Background(), callReq(map[string]any{"path": path}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("expected success, got %v", result.Content)
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want text", result.Content[0])
	}
	for _, want := range []string{`"fields"`, `"rows"`, `"t1"`} {
		if !strings.Contains(text.Text, want) {
			t.Errorf("result missing %s: %s", want, text.Text)
		}
	}
}

func TestHandleRead_WhereFilter(t *testing.T) {
	path := writeFixture(t, "data.json", `[{"x":1},{"x":5}]`)

	result, err := HandleRead(context.Background(), callReq(map[string]any{
		"path":  path,
		"where": "x > 2",
	}))
	if err != nil {
		t.Fatal(err)
	}
	text := result.Content[0].(mcp.TextContent).Text
	if strings.Contains(text, "1,") || !strings.Contains(text, "5") {
		t.Errorf("filter not applied: %s", text)
	}
}

func TestHandleList(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x\n1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := HandleList(context.Background(), callReq(map[string]any{"dir": dir}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("expected success, got %v", result.Content)
	}
	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "a.csv") {
		t.Errorf("listing missing a.csv: %s", text)
	}
	if strings.Contains(text, "notes.txt") {
		t.Errorf("listing includes non-fixture file: %s", text)
	}
}
