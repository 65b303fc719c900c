// Package main provides the iconsty CLI for generating LaTeX icon-font packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitCode(os.Stderr, err))
	}
}

// exitCode reports err on w and returns the process exit code. A failed
// check has already printed its issues, so nothing more is written for it.
func exitCode(w io.Writer, err error) int {
	if !errors.Is(err, errCheckFailed) {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return 1
}
