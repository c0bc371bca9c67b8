// Package main is the entry point for the create-skeleton-app CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/donaldgifford/create-skeleton-app/cmd"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd.SetVersionInfo(version, commit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
