package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/petstore/petstore-mcp-server/internal/app"
	"github.com/petstore/petstore-mcp-server/internal/config"
	"github.com/petstore/petstore-mcp-server/internal/logging"
	"github.com/petstore/petstore-mcp-server/internal/petstore"
	"github.com/petstore/petstore-mcp-server/internal/protocol"
	"github.com/petstore/petstore-mcp-server/internal/version"
)

// Manifest is the machine-readable tool catalog, for clients that want the
// contract without speaking MCP.
type Manifest struct {
	Name    string                    `json:"name"`
	Version string                    `json:"version"`
	Tools   []protocol.ToolDescriptor `json:"tools"`
}

func main() {
	outDir := flag.String("out", "dist", "output directory for manifest.json")
	flag.Parse()

	path, err := Generate(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("manifest written to %s\n", path)
}

// Generate writes the catalog manifest and returns its path.
func Generate(outDir string) (string, error) {
	// The client never issues a request here; Describe only reads descriptors.
	client := petstore.NewClient(config.FromEnv(), logging.Discard())
	manifest := Manifest{
		Name:    "petstore-mcp-server",
		Version: version.Get().Version,
		Tools:   app.NewToolbox(client).Describe(),
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, "manifest.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
