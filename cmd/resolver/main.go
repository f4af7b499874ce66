package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/app"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/cli"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/hcl"
)

// main is the entrypoint for the resolver. Result ids go to stdout, one per
// line; diagnostics go to stderr, so the build scripts can consume the
// output directly.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		// A negative is-built probe is an answer, not a failure; the exit
		// code alone carries it.
		if errors.Is(err, app.ErrNotBuilt) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (unloadable registry
	// manifest); recover here to hand the caller a clean error instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	resolverApp := app.NewApp(outW, logW, appConfig, loader)

	return resolverApp.Run(context.Background(), appConfig)
}
