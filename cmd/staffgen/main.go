package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/staffgen/internal/cli"
	"github.com/okian/staffgen/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1) //nolint:gocritic // exit after deferred stop is acceptable here
	}

	if err := cli.NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
