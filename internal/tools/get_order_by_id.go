package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// getOrderByIDTool fetches details for a single store order.
type getOrderByIDTool struct {
	client *petstore.Client
}

// GetOrderByID constructs the order lookup tool.
func GetOrderByID(client *petstore.Client) *getOrderByIDTool {
	return &getOrderByIDTool{client: client}
}

func (t *getOrderByIDTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_order_by_id",
		Description: "Get details of a specific order",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"order_id": {
					Type:        "integer",
					Description: "ID of the order to retrieve",
				},
				"auth_token": {
					Type:        "string",
					Description: "JWT authentication token",
				},
			},
			Required: []string{"order_id", "auth_token"},
		},
	}
}

type getOrderArgs struct {
	OrderID   *int64 `json:"order_id"`
	AuthToken string `json:"auth_token"`
}

func (t *getOrderByIDTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args getOrderArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.OrderID == nil {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "order_id")
	}
	if args.AuthToken == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "auth_token")
	}

	order := t.client.GetOrderByID(ctx, *args.OrderID, args.AuthToken)
	if order == nil {
		return protocol.TextContent("Order not found or access denied"), nil
	}
	return protocol.TextContent("Order Details:\n" + petstore.FormatOrderDetails(*order)), nil
}
