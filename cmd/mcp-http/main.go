package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/petstore/petstore-mcp-server/internal/app"
	"github.com/petstore/petstore-mcp-server/internal/config"
	"github.com/petstore/petstore-mcp-server/internal/logging"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", envOr("MCP_HTTP_ADDR", ":3333"), "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	logger, cleanup, err := logging.New("mcp-http")
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer cleanup()

	cfg := config.FromEnv()
	log.Printf("MCP server listening on %s (petstore api %s)", *httpAddr, cfg.BaseURL)
	if err := app.RunMCPHTTP(cfg, logger, *httpAddr); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
