package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/app"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("resolver", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
resolver - component dependency resolution for the benchmark build pipeline.

Usage:
  resolver [options] <command> <component> [install-root]

Commands:
  deps            Print the direct dependencies of a component.
  all-deps        Print every component that must be built before the
                  component, in build order, the component itself last.
  dependents      Print the direct dependents of a component.
  all-dependents  Print every component that depends on the component,
                  furthest dependents first, the component itself excluded.
  is-built        Exit 0 when all of the component's build artifacts exist
                  under the given install root, 1 otherwise. Prints nothing.

Options:
`)
		flagSet.PrintDefaults()
	}

	kindFlag := flagSet.String("kind", "", "Component kind hint for name normalization ('runner' expands bare runner names).")
	registryFlag := flagSet.String("registry", "", "Path to an HCL manifest replacing the built-in component table.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var kindHint component.Kind
	if *kindFlag != "" {
		parsed, err := component.ParseKind(*kindFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		kindHint = parsed
	}

	config, err := app.NewConfig(app.Config{
		Command:      flagSet.Arg(0),
		Component:    flagSet.Arg(1),
		InstallRoot:  flagSet.Arg(2),
		KindHint:     kindHint,
		RegistryPath: *registryFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
