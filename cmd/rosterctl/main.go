// Command rosterctl operates the roster entity store from the command line.
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

	root := newRootCmd(os.Stdout, infraOptions())
	if err := root.ExecuteContext(ctx); err != nil {
		writeError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
