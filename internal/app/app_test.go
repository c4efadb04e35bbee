package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/petstore/petstore-mcp-server/internal/config"
	"github.com/petstore/petstore-mcp-server/internal/logging"
	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

func TestToolboxCatalog(t *testing.T) {
	client := petstore.NewClient(config.Config{BaseURL: "http://localhost:3002", Timeout: time.Second}, logging.Discard())
	tb := NewToolbox(client)

	want := []string{
		"search_pets_by_status",
		"search_pets_by_tags",
		"get_pet_by_id",
		"get_store_inventory",
		"get_order_by_id",
		"place_order",
		"login_user",
		"get_user_profile",
		"create_user",
		"add_pet",
	}

	descriptors := tb.Describe()
	if len(descriptors) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(descriptors))
	}
	for i, name := range want {
		if descriptors[i].Name != name {
			t.Fatalf("position %d: got %q want %q", i, descriptors[i].Name, name)
		}
	}
}

func TestServerEndToEnd(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/pet/42" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":42,"name":"Rex","category":{"name":"Dogs"},"status":"available"}`))
	}))
	defer backend.Close()

	server := NewMCPServer(config.Config{BaseURL: backend.URL, Timeout: time.Second}, logging.Discard())

	resp, err := server.Handle(context.Background(), protocol.Request{
		JSONRPC: "2.0",
		ID:      float64(1),
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"get_pet_by_id","arguments":{"pet_id":42,"auth_token":"tok"}}`),
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content part, got %+v", result)
	}
	text := result.Content[0].Text
	for _, want := range []string{"Pet Details:", "Name: Rex", "Category: Dogs", "Status: available"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in %q", want, text)
		}
	}
}
