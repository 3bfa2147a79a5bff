package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	internal "github.com/ZanzyTHEbar/layout-search/cosearch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger := internal.GetLogger()
		logger.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
