// SPDX-License-Identifier: MIT

// Command sbmgen generates and verifies stochastic block model graph
// datasets.
//
//	sbmgen generate --out data --seed 42
//	sbmgen verify --dir data
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/baranwa2/RandomWalkGCN/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger := config.NewLogger(os.Stderr, "info")
		logger.Error().Err(err).Msg("sbmgen failed")
		stop()
		os.Exit(1)
	}
}
