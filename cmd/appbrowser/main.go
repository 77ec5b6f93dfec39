// Command appbrowser browses loan applications served by a paged HTTP endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/appbrowser/internal/cli"
	"github.com/rshade/appbrowser/pkg/version"
)

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// extractExitCode maps a command error to the process exit status.
// FetchExitError carries its own code; any other error exits with 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var fetchErr *cli.FetchExitError
	if errors.As(err, &fetchErr) {
		return fetchErr.ExitCode
	}
	return 1
}
