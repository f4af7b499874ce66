package app

import (
	"errors"
	"fmt"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
)

// Resolver subcommands. deps/dependents return direct edges only; the all-
// variants return full transitive closures.
const (
	CommandDeps          = "deps"
	CommandAllDeps       = "all-deps"
	CommandDependents    = "dependents"
	CommandAllDependents = "all-dependents"
	CommandIsBuilt       = "is-built"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Command is one of the Command* constants.
	Command string
	// Component is the raw, possibly shorthand, component name.
	Component string
	// InstallRoot is the install tree probed by is-built.
	InstallRoot string
	// KindHint drives name normalization ("runner" expands bare runner
	// names). Empty means no hint.
	KindHint component.Kind
	// RegistryPath optionally points at an HCL manifest replacing the
	// built-in component table.
	RegistryPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandDeps, CommandAllDeps, CommandDependents, CommandAllDependents:
	case CommandIsBuilt:
		if cfg.InstallRoot == "" {
			return nil, errors.New("is-built requires an install root argument")
		}
	case "":
		return nil, errors.New("a command is required")
	default:
		return nil, fmt.Errorf("unknown command: %q", cfg.Command)
	}

	if cfg.Component == "" {
		return nil, errors.New("a component name is required")
	}

	return &cfg, nil
}
