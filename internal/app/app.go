package app

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/petstore/petstore-mcp-server/internal/config"
	"github.com/petstore/petstore-mcp-server/internal/mcp"
	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/tools"
)

// NewToolbox builds the shared Petstore MCP toolbox. Registration order is
// the order the catalog advertises.
func NewToolbox(client *petstore.Client) *mcp.Toolbox {
	return mcp.NewToolbox(
		// Pet search and retrieval
		tools.SearchPetsByStatus(client),
		tools.SearchPetsByTags(client),
		tools.GetPetByID(client),

		// Store operations
		tools.GetStoreInventory(client),
		tools.GetOrderByID(client),
		tools.PlaceOrder(client),

		// User management
		tools.LoginUser(client),
		tools.GetUserProfile(client),
		tools.CreateUser(client),

		// Catalog administration
		tools.AddPet(client),
	)
}

// NewMCPServer constructs an MCP server over a fresh API client.
func NewMCPServer(cfg config.Config, log *logrus.Entry) *mcp.Server {
	client := petstore.NewClient(cfg, log)
	return mcp.NewServer(NewToolbox(client))
}

// RunMCPHTTP starts the MCP HTTP server on the provided address.
func RunMCPHTTP(cfg config.Config, log *logrus.Entry, addr string) error {
	return mcp.RunHTTP(NewMCPServer(cfg, log), addr)
}

// RunMCPStdio serves MCP over stdin/stdout until EOF or cancellation.
func RunMCPStdio(ctx context.Context, cfg config.Config, log *logrus.Entry) error {
	return mcp.RunStdio(ctx, NewMCPServer(cfg, log), os.Stdin, os.Stdout)
}
