package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hailam/bytesize/internal/adapters/factory"
	"github.com/hailam/bytesize/internal/commands"
)

func main() {
	// --- Composition Root: Initialize Adapters ---
	rootCmd := commands.NewRootCmd(commands.Deps{
		Fillers: factory.NewStaticFillerFactory(),
		Reports: factory.NewStaticReportFactory(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		stop()
		os.Exit(1)
	}
}
