package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/ctxlog"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/dag"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/probe"
)

// ErrNotBuilt reports that an is-built probe came back negative. It carries
// no message for the user: the exit code alone is the answer, so the build
// scripts can branch on it without parsing output.
var ErrNotBuilt = errors.New("component is not built")

// Run executes the requested resolver command and writes result lines to the
// app's output writer.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	id := component.Normalize(appConfig.KindHint, appConfig.Component)
	a.logger.Debug("Component name normalized.", "raw", appConfig.Component, "canonical", id, "hint", appConfig.KindHint)

	if appConfig.Command == CommandIsBuilt {
		return a.runIsBuilt(ctx, id, appConfig.InstallRoot)
	}

	var (
		ids []string
		err error
	)
	switch appConfig.Command {
	case CommandDeps:
		ids, err = a.graph.Deps(id)
	case CommandAllDeps:
		ids, err = a.graph.AllDeps(id)
	case CommandDependents:
		ids, err = a.graph.Dependents(id)
	case CommandAllDependents:
		ids, err = a.graph.AllDependents(id)
	default:
		// NewConfig rejects anything else before Run is reached.
		return fmt.Errorf("unknown command: %q", appConfig.Command)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("Resolution complete.", "command", appConfig.Command, "component", id, "count", len(ids))
	for _, out := range ids {
		if _, err := fmt.Fprintln(a.outW, out); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// runIsBuilt probes the install root for the component's artifacts. The
// boolean travels as the process exit code, so a negative probe surfaces as
// ErrNotBuilt rather than output.
func (a *App) runIsBuilt(ctx context.Context, id, installRoot string) error {
	c, ok := a.registry.Lookup(id)
	if !ok {
		return &dag.UnknownComponentError{ID: id}
	}

	if probe.IsBuilt(ctx, c, installRoot) {
		a.logger.Debug("Component is built.", "component", id, "root", installRoot)
		return nil
	}
	a.logger.Debug("Component is not built.", "component", id, "root", installRoot)
	return ErrNotBuilt
}
