package main

import (
	"context"
	"log"

	"secretcopy/internal/cli"
	"secretcopy/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// A nil client makes the commands dial the cluster lazily, so help and
	// --dry-run work without a kubeconfig
	rootCmd := cli.NewRootCmd(cfg, nil)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("secretcopy: %v", err)
	}
}
