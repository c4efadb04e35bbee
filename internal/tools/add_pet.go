package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// addPetTool adds a new pet to the store catalog.
type addPetTool struct {
	client *petstore.Client
}

// AddPet constructs the pet creation tool.
func AddPet(client *petstore.Client) *addPetTool {
	return &addPetTool{client: client}
}

func (t *addPetTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "add_pet",
		Description: "Add a new pet to the store (requires store_owner or admin role)",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"name": {
					Type:        "string",
					Description: "Pet name",
				},
				"category_name": {
					Type:        "string",
					Description: "Category name (e.g., Dogs, Cats)",
				},
				"status": {
					Type:        "string",
					Enum:        []string{"available", "pending", "sold"},
					Default:     "available",
					Description: "Pet status",
				},
				"photo_urls": {
					Type:        "array",
					Items:       &protocol.JSONSchema{Type: "string"},
					Description: "Array of photo URLs",
				},
				"tag_names": {
					Type:        "array",
					Items:       &protocol.JSONSchema{Type: "string"},
					Description: "Array of tag names",
				},
				"auth_token": {
					Type:        "string",
					Description: "JWT authentication token",
				},
			},
			Required: []string{"name", "auth_token"},
		},
	}
}

type addPetArgs struct {
	Name         string   `json:"name"`
	CategoryName string   `json:"category_name,omitempty"`
	Status       string   `json:"status,omitempty"`
	PhotoURLs    []string `json:"photo_urls,omitempty"`
	TagNames     []string `json:"tag_names,omitempty"`
	AuthToken    string   `json:"auth_token"`
}

func (t *addPetTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error) {
	var args addPetArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if args.Name == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "name")
	}
	if args.AuthToken == "" {
		return protocol.CallResult{}, fmt.Errorf("missing required argument %q", "auth_token")
	}

	// Flat arguments regroup into the nested shape the API expects.
	category := args.CategoryName
	if category == "" {
		category = "Uncategorized"
	}
	status := args.Status
	if status == "" {
		status = "available"
	}
	photoURLs := args.PhotoURLs
	if photoURLs == nil {
		photoURLs = []string{}
	}
	tags := make([]petstore.Tag, 0, len(args.TagNames))
	for _, name := range args.TagNames {
		tags = append(tags, petstore.Tag{Name: name})
	}

	pet := t.client.AddPet(ctx, petstore.NewPet{
		Name:      args.Name,
		Category:  petstore.Category{Name: category},
		Status:    status,
		PhotoURLs: photoURLs,
		Tags:      tags,
	}, args.AuthToken)
	if pet == nil {
		return protocol.TextContent("Failed to add pet"), nil
	}
	return protocol.TextContent("Pet added successfully:\n" + petstore.FormatPetDetails(*pet)), nil
}
