// Command server runs the lingreader HTTP API.
//
// Usage:
//
//	server
//
// Configuration comes from CONFIG_PATH (YAML) and environment
// variables; a .env file in the working directory is loaded if present.
// SIGINT/SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/lingreader-backend/internal/app"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
