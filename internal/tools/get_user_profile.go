package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// getUserProfileTool fetches an account profile.
type getUserProfileTool struct {
	client *petstore.Client
}

// GetUserProfile constructs the profile lookup tool.
func GetUserProfile(client *petstore.Client) *getUserProfileTool {
	return &getUserProfileTool{client: client}
}

func (t *getUserProfileTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_user_profile",
		Description: "Get user profile information",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"username": {
					Type:        "string",
					Description: "Username to retrieve",
				},
				"auth_token": {
					Type:        "string",
					Description: "JWT authentication token",
				},
			},
			Required: []string{"username", "auth_token"},
		},
	}
}

type profileArgs struct {
	Username  string `json:"username"`
	AuthToken string `json:"auth_token"`
}

func (t *getUserProfileTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args profileArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.Username == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "username")
	}
	if args.AuthToken == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "auth_token")
	}

	user := t.client.GetUserProfile(ctx, args.Username, args.AuthToken)
	if user == nil {
		return protocol.TextContent("User not found or access denied"), nil
	}
	return protocol.TextContent("User Profile:\n" + petstore.FormatUserDetails(*user)), nil
}
