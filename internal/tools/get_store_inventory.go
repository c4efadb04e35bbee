package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// getStoreInventoryTool reports pet counts by status.
type getStoreInventoryTool struct {
	client *petstore.Client
}

// GetStoreInventory constructs the inventory tool.
func GetStoreInventory(client *petstore.Client) *getStoreInventoryTool {
	return &getStoreInventoryTool{client: client}
}

func (t *getStoreInventoryTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_store_inventory",
		Description: "Get inventory counts by pet status (requires store_owner or admin role)",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"auth_token": {
					Type:        "string",
					Description: "JWT authentication token",
				},
			},
			Required: []string{"auth_token"},
		},
	}
}

type inventoryArgs struct {
	AuthToken string `json:"auth_token"`
}

func (t *getStoreInventoryTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args inventoryArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.AuthToken == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "auth_token")
	}

	inventory := t.client.GetStoreInventory(ctx, args.AuthToken)
	if inventory == nil {
		return protocol.TextContent("Failed to retrieve inventory"), nil
	}
	return protocol.TextContent("Store Inventory:\n" + petstore.FormatInventory(inventory)), nil
}
