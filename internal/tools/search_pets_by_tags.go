package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// searchPetsByTagsTool lists pets carrying any of the given tags.
type searchPetsByTagsTool struct {
	client *petstore.Client
}

// SearchPetsByTags constructs the tag search tool.
func SearchPetsByTags(client *petstore.Client) *searchPetsByTagsTool {
	return &searchPetsByTagsTool{client: client}
}

func (t *searchPetsByTagsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "search_pets_by_tags",
		Description: "Search for pets by tag names",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"tags": {
					Type:        "array",
					Items:       &protocol.JSONSchema{Type: "string"},
					Description: "Array of tag names to search for",
				},
				"auth_token": {
					Type:        "string",
					Description: "JWT authentication token; without it the search returns no results",
				},
			},
			Required: []string{"tags"},
		},
	}
}

type searchByTagsArgs struct {
	Tags      []string `json:"tags"`
	AuthToken string   `json:"auth_token,omitempty"`
}

func (t *searchPetsByTagsTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args searchByTagsArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.Tags == nil {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "tags")
	}

	pets := t.client.SearchPetsByTags(ctx, args.Tags, args.AuthToken)
	text := fmt.Sprintf("Found %d pets with tags %s:\n%s", len(pets), strings.Join(args.Tags, ", "), petstore.FormatPetsList(pets))
	return protocol.TextContent(text), nil
}
