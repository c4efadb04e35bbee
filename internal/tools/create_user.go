package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// createUserTool registers a new account.
type createUserTool struct {
	client *petstore.Client
}

// CreateUser constructs the account creation tool.
func CreateUser(client *petstore.Client) *createUserTool {
	return &createUserTool{client: client}
}

func (t *createUserTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "create_user",
		Description: "Create a new user account",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"username": {
					Type:        "string",
					Description: "Username for the new account",
				},
				"password": {
					Type:        "string",
					Description: "Password for the new account",
				},
				"email": {
					Type:        "string",
					Description: "Email address",
				},
				"first_name": {
					Type:        "string",
					Description: "First name",
				},
				"last_name": {
					Type:        "string",
					Description: "Last name",
				},
				"phone": {
					Type:        "string",
					Description: "Phone number",
				},
			},
			Required: []string{"username", "password"},
		},
	}
}

type createUserArgs struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (t *createUserTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args createUserArgs
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

	user := t.client.CreateUser(ctx, petstore.NewUser{
		Username:  args.Username,
		Password:  args.Password,
		Email:     args.Email,
		FirstName: args.FirstName,
		LastName:  args.LastName,
		Phone:     args.Phone,
	})
	if user == nil {
		return protocol.TextContent("Failed to create user"), nil
	}
	return protocol.TextContent("User created successfully:\n" + petstore.FormatUserDetails(*user)), nil
}
