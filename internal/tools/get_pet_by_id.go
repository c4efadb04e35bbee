package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// getPetByIDTool fetches details for a single pet.
type getPetByIDTool struct {
	client *petstore.Client
}

// GetPetByID constructs the pet lookup tool.
func GetPetByID(client *petstore.Client) *getPetByIDTool {
	return &getPetByIDTool{client: client}
}

func (t *getPetByIDTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_pet_by_id",
		Description: "Get detailed information about a specific pet",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"pet_id": {
					Type:        "integer",
					Description: "ID of the pet to retrieve",
				},
				"auth_token": {
					Type:        "string",
					Description: "JWT authentication token; without it the pet is not found",
				},
			},
			Required: []string{"pet_id"},
		},
	}
}

type getPetArgs struct {
	PetID     *int64 `json:"pet_id"`
	AuthToken string `json:"auth_token,omitempty"`
}

func (t *getPetByIDTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args getPetArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.PetID == nil {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "pet_id")
	}

	pet := t.client.GetPetByID(ctx, *args.PetID, args.AuthToken)
	if pet == nil {
		return protocol.TextContent("Pet not found."), nil
	}
	return protocol.TextContent("Pet Details:\n" + petstore.FormatPetDetails(*pet)), nil
}
