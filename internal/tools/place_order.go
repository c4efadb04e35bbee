package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// placeOrderTool places a quantity-1 order for a pet.
type placeOrderTool struct {
	client *petstore.Client
}

// PlaceOrder constructs the order placement tool.
func PlaceOrder(client *petstore.Client) *placeOrderTool {
	return &placeOrderTool{client: client}
}

func (t *placeOrderTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "place_order",
		Description: "Place a new order for a pet",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"pet_id": {
					Type:        "integer",
					Description: "ID of the pet to order",
				},
				"ship_date": {
					Type:        "string",
					Format:      "date-time",
					Description: "Shipping date in ISO format",
				},
				"auth_token": {
					Type:        "string",
					Description: "JWT authentication token",
				},
			},
			Required: []string{"pet_id", "auth_token"},
		},
	}
}

type placeOrderArgs struct {
	PetID     *int64 `json:"pet_id"`
	ShipDate  string `json:"ship_date,omitempty"`
	AuthToken string `json:"auth_token"`
}

func (t *placeOrderTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args placeOrderArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.PetID == nil {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "pet_id")
	}
	if args.AuthToken == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "auth_token")
	}

	order := t.client.PlaceOrder(ctx, *args.PetID, args.AuthToken, args.ShipDate)
	if order == nil {
		return protocol.TextContent("Failed to place order"), nil
	}
	return protocol.TextContent("Order placed successfully:\n" + petstore.FormatOrderDetails(*order)), nil
}
