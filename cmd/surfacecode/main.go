// SPDX-License-Identifier: MIT

// Command surfacecode inspects surface-code layouts, emits memory-experiment
// circuits and decodes the records a backend returns for them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
