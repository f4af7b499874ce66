package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/ctxlog"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/dag"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/registry"
)

// RegistryLoader abstracts where the component table comes from, so the app
// does not depend on the HCL machinery directly.
type RegistryLoader interface {
	Load(ctx context.Context, path string) (*registry.Registry, error)
}

// App encapsulates the resolver's dependencies, configuration, and lifecycle.
type App struct {
	// outW receives result lines only; diagnostics go through the logger.
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	graph    *dag.Graph
}

// NewApp is the constructor for the resolver application. It builds an
// isolated logger, loads the component registry (built-in table, or a
// manifest when the config names one), and constructs the dependency graph.
// A registry that cannot be loaded is a fatal startup error and panics; the
// caller recovers and turns it into a clean exit.
func NewApp(outW, logW io.Writer, appConfig *Config, loader RegistryLoader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.Builtin()
	if appConfig.RegistryPath != "" {
		loaded, err := loader.Load(ctx, appConfig.RegistryPath)
		if err != nil {
			panic(fmt.Errorf("failed to load registry manifest: %w", err))
		}
		reg = loaded
		logger.Debug("Registry manifest loaded.", "path", appConfig.RegistryPath, "components", reg.Len())
	} else {
		logger.Debug("Using built-in registry.", "components", reg.Len())
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		graph:    dag.New(reg),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
