package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// searchPetsByStatusTool lists pets by availability status.
type searchPetsByStatusTool struct {
	client *petstore.Client
}

// SearchPetsByStatus constructs the status search tool.
func SearchPetsByStatus(client *petstore.Client) *searchPetsByStatusTool {
	return &searchPetsByStatusTool{client: client}
}

func (t *searchPetsByStatusTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "search_pets_by_status",
		Description: "Search for pets by their availability status (available, pending, sold)",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"status": {
					Type:        "string",
					Enum:        []string{"available", "pending", "sold"},
					Description: "Pet status to search for",
				},
				"auth_token": {
					Type:        "string",
					Description: "JWT authentication token; without it the search returns no results",
				},
			},
			Required: []string{"status"},
		},
	}
}

type searchByStatusArgs struct {
	Status    string `json:"status"`
	AuthToken string `json:"auth_token,omitempty"`
}

func (t *searchPetsByStatusTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args searchByStatusArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.Status == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "status")
	}

	pets := t.client.SearchPetsByStatus(ctx, args.Status, args.AuthToken)
	text := fmt.Sprintf("Found %d pets with status '%s':\n%s", len(pets), args.Status, petstore.FormatPetsList(pets))
	return protocol.TextContent(text), nil
}
