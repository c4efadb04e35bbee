package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// loginUserTool exchanges credentials for an auth token.
type loginUserTool struct {
	client *petstore.Client
}

// LoginUser constructs the login tool.
func LoginUser(client *petstore.Client) *loginUserTool {
	return &loginUserTool{client: client}
}

func (t *loginUserTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "login_user",
		Description: "Log in a user and get authentication token",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"username": {
					Type:        "string",
					Description: "Username",
				},
				"password": {
					Type:        "string",
					Description: "Password",
				},
			},
			Required: []string{"username", "password"},
		},
	}
}

type loginArgs struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (t *loginUserTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args loginArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.Username == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "username")
	}
	if args.Password == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "password")
	}

	result := t.client.LoginUser(ctx, args.Username, args.Password)
	if result == nil || result.Token == "" {
		return protocol.TextContent("Login failed - invalid credentials"), nil
	}
	return protocol.TextContent("Login successful! Token: " + result.Token), nil
}
