package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

type fakeTool struct {
	name   string
	result protocol.CallResult
	err    error
	panics bool
	calls  int
}

func (f *fakeTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{Name: f.name, Description: "fake tool"}
}

func (f *fakeTool) Invoke(_ context.Context, _ json.RawMessage) (protocol.CallResult, error) {
	f.calls++
	if f.panics {
		panic("tool exploded")
	}
	return f.result, f.err
}

func callText(t *testing.T, res protocol.CallResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content part, got %+v", res)
	}
	return res.Content[0].Text
}

func TestToolboxCallDispatches(t *testing.T) {
	tool := &fakeTool{name: "echo", result: protocol.TextContent("hello")}
	tb := NewToolbox(tool)

	res := tb.Call(context.Background(), "echo", nil)
	if got := callText(t, res); got != "hello" {
		t.Fatalf("unexpected result: %q", got)
	}
	if tool.calls != 1 {
		t.Fatalf("expected one invocation, got %d", tool.calls)
	}
}

func TestToolboxUnknownToolText(t *testing.T) {
	tool := &fakeTool{name: "echo"}
	tb := NewToolbox(tool)

	res := tb.Call(context.Background(), "nonexistent_tool", nil)
	if got := callText(t, res); got != "Unknown tool: nonexistent_tool" {
		t.Fatalf("unexpected unknown-tool text: %q", got)
	}
	if tool.calls != 0 {
		t.Fatalf("unknown name must not invoke any tool")
	}
}

func TestToolboxErrorRendersAsText(t *testing.T) {
	tb := NewToolbox(&fakeTool{name: "broken", err: errors.New("missing required argument \"status\"")})

	res := tb.Call(context.Background(), "broken", nil)
	if got := callText(t, res); got != `Error: missing required argument "status"` {
		t.Fatalf("unexpected error text: %q", got)
	}
}

func TestToolboxRecoversPanic(t *testing.T) {
	tb := NewToolbox(&fakeTool{name: "bomb", panics: true})

	res := tb.Call(context.Background(), "bomb", nil)
	if got := callText(t, res); got != "Error: tool exploded" {
		t.Fatalf("unexpected panic text: %q", got)
	}

	// The toolbox must stay usable after a panic.
	res = tb.Call(context.Background(), "nonexistent_tool", nil)
	if got := callText(t, res); got != "Unknown tool: nonexistent_tool" {
		t.Fatalf("toolbox broken after panic: %q", got)
	}
}

func TestDescribePreservesRegistrationOrder(t *testing.T) {
	tb := NewToolbox(
		&fakeTool{name: "c"},
		&fakeTool{name: "a"},
		&fakeTool{name: "b"},
	)

	descriptors := tb.Describe()
	want := []string{"c", "a", "b"}
	if len(descriptors) != len(want) {
		t.Fatalf("expected %d descriptors, got %d", len(want), len(descriptors))
	}
	for i, name := range want {
		if descriptors[i].Name != name {
			t.Fatalf("position %d: got %q want %q", i, descriptors[i].Name, name)
		}
	}
}
