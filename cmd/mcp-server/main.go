package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/petstore/petstore-mcp-server/internal/app"
	"github.com/petstore/petstore-mcp-server/internal/config"
	"github.com/petstore/petstore-mcp-server/internal/logging"
	"github.com/petstore/petstore-mcp-server/internal/version"
)

func main() {
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get())
		return
	}

	// stdout carries JSON-RPC; diagnostics go to the component log file.
	logger, cleanup, err := logging.New("mcp-server")
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	logger.WithField("base_url", cfg.BaseURL).Info("petstore MCP server starting on stdio")

	if err := app.RunMCPStdio(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("stdio server error")
		os.Exit(1)
	}
}
