package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

func handle(t *testing.T, s *Server, method string, params string) protocol.Response {
	t.Helper()
	req := protocol.Request{JSONRPC: "2.0", ID: float64(1), Method: method}
	if params != "" {
		req.Params = json.RawMessage(params)
	}
	resp, err := s.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("handle %s: %v", method, err)
	}
	return resp
}

func TestInitialize(t *testing.T) {
	s := NewServer(NewToolbox(&fakeTool{name: "echo"}))

	resp := handle(t, s, "initialize", "")
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	info, ok := result["serverInfo"].(map[string]string)
	if !ok {
		t.Fatalf("missing serverInfo: %+v", result)
	}
	if info["name"] != "petstore-mcp-server" {
		t.Fatalf("unexpected server name: %s", info["name"])
	}
	if info["version"] == "" {
		t.Fatalf("version must not be empty")
	}
}

func TestPing(t *testing.T) {
	s := NewServer(NewToolbox())
	if resp := handle(t, s, "ping", ""); resp.Error != nil {
		t.Fatalf("ping failed: %+v", resp.Error)
	}
}

func TestToolsList(t *testing.T) {
	s := NewServer(NewToolbox(&fakeTool{name: "one"}, &fakeTool{name: "two"}))

	resp := handle(t, s, "tools/list", "")
	list, ok := resp.Result.(protocol.ListResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(list.Tools) != 2 || list.Tools[0].Name != "one" || list.Tools[1].Name != "two" {
		t.Fatalf("unexpected tool list: %+v", list.Tools)
	}
}

func TestToolsCallUnknownToolIsTextNotError(t *testing.T) {
	s := NewServer(NewToolbox(&fakeTool{name: "echo"}))

	resp := handle(t, s, "tools/call", `{"name":"nonexistent_tool"}`)
	if resp.Error != nil {
		t.Fatalf("unknown tool must not be a protocol error: %+v", resp.Error)
	}
	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if got := callText(t, result); got != "Unknown tool: nonexistent_tool" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestToolsCallMissingName(t *testing.T) {
	s := NewServer(NewToolbox())

	resp := handle(t, s, "tools/call", `{}`)
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected invalid params error, got %+v", resp.Error)
	}
}

func TestUnknownMethod(t *testing.T) {
	s := NewServer(NewToolbox())

	resp := handle(t, s, "bogus/method", "")
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected method-not-found, got %+v", resp.Error)
	}
}

func TestInvalidJSONRPCVersion(t *testing.T) {
	s := NewServer(NewToolbox())

	resp, err := s.Handle(context.Background(), protocol.Request{JSONRPC: "1.0", ID: "x", Method: "ping"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("expected invalid request, got %+v", resp.Error)
	}
}

func TestNormalizeID(t *testing.T) {
	if got := normalizeID(nil); got != "0" {
		t.Fatalf("nil id: %v", got)
	}
	if got := normalizeID("abc"); got != "abc" {
		t.Fatalf("string id: %v", got)
	}
	if got := normalizeID(float64(7)); got != float64(7) {
		t.Fatalf("number id: %v", got)
	}
}
