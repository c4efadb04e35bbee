package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

func TestRunStdioServesRequests(t *testing.T) {
	s := NewServer(NewToolbox(&fakeTool{name: "echo", result: protocol.TextContent("hi")}))

	in := strings.NewReader(
		`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n" +
			`{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
			`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"echo"}}` + "\n",
	)
	var out bytes.Buffer

	if err := RunStdio(context.Background(), s, in, &out); err != nil {
		t.Fatalf("run stdio: %v", err)
	}

	dec := json.NewDecoder(&out)
	var responses []protocol.Response
	for dec.More() {
		var resp protocol.Response
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		responses = append(responses, resp)
	}

	// The notification gets no response.
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if responses[0].Error != nil {
		t.Fatalf("ping failed: %+v", responses[0].Error)
	}
	if responses[1].Error != nil {
		t.Fatalf("tools/call failed: %+v", responses[1].Error)
	}
}

func TestRunStdioEOFIsClean(t *testing.T) {
	s := NewServer(NewToolbox())
	var out bytes.Buffer
	if err := RunStdio(context.Background(), s, strings.NewReader(""), &out); err != nil {
		t.Fatalf("expected nil on EOF, got %v", err)
	}
}

func TestRunStdioMalformedInput(t *testing.T) {
	s := NewServer(NewToolbox())
	var out bytes.Buffer
	err := RunStdio(context.Background(), s, strings.NewReader("{not json"), &out)
	if err == nil {
		t.Fatalf("expected error for malformed input")
	}
	if !strings.Contains(out.String(), "-32700") {
		t.Fatalf("expected parse error response, got %q", out.String())
	}
}

func TestRunStdioHonorsCancellation(t *testing.T) {
	s := NewServer(NewToolbox())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := RunStdio(ctx, s, strings.NewReader(`{"id":1,"method":"ping"}`), &out); err == nil {
		t.Fatalf("expected context error")
	}
}
