package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/henri123lemoine/gitsy/internal/debug"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the root command and returns the process exit code. The
// debug log is closed on every path, including startup failures.
func execute(ctx context.Context, args []string, stderr io.Writer) int {
	defer debug.Close()

	root := newRootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "gitsy:", err)
		return 1
	}
	return 0
}
