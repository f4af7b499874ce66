package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/dag"
)

// newTestApp builds an app on the built-in registry with captured output.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg := &Config{LogLevel: "error", LogFormat: "text"}
	return NewApp(out, &bytes.Buffer{}, cfg, nil), out
}

func outputLines(out *bytes.Buffer) []string {
	trimmed := strings.TrimSpace(out.String())
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestRun_AllDependentsOrdering(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t)
	cfg, err := NewConfig(Config{Command: CommandAllDependents, Component: "aws-c-common"})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), cfg))
	assert.Equal(t, []string{
		"runner-s3-c", "aws-c-s3", "aws-c-auth", "aws-c-http", "aws-c-io",
		"aws-c-cal", "aws-lc", "s2n", "aws-checksums", "aws-c-compression",
		"aws-c-sdkutils",
	}, outputLines(out))
}

func TestRun_DirectDeps(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t)
	cfg, err := NewConfig(Config{Command: CommandDeps, Component: "aws-c-http"})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), cfg))
	assert.Equal(t, []string{"aws-c-common", "aws-c-io", "aws-c-compression"}, outputLines(out))
}

func TestRun_RunnerShorthandNormalized(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t)
	cfg, err := NewConfig(Config{
		Command:   CommandAllDeps,
		Component: "s3-c",
		KindHint:  component.KindRunner,
	})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), cfg))
	lines := outputLines(out)
	require.NotEmpty(t, lines)
	assert.Equal(t, "runner-s3-c", lines[len(lines)-1])
}

func TestRun_UnknownComponentError(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	cfg, err := NewConfig(Config{Command: CommandAllDeps, Component: "nope"})
	require.NoError(t, err)

	runErr := a.Run(context.Background(), cfg)
	var unknown *dag.UnknownComponentError
	require.ErrorAs(t, runErr, &unknown)
	assert.Equal(t, "nope", unknown.ID)
}

func TestRun_IsBuiltNotBuilt(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t)
	cfg, err := NewConfig(Config{
		Command:     CommandIsBuilt,
		Component:   "aws-c-common",
		InstallRoot: t.TempDir(),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, a.Run(context.Background(), cfg), ErrNotBuilt)
	assert.Empty(t, out.String())
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("is-built requires install root", func(t *testing.T) {
		_, err := NewConfig(Config{Command: CommandIsBuilt, Component: "x"})
		assert.ErrorContains(t, err, "install root")
	})

	t.Run("command required", func(t *testing.T) {
		_, err := NewConfig(Config{Component: "x"})
		assert.ErrorContains(t, err, "command is required")
	})

	t.Run("component required", func(t *testing.T) {
		_, err := NewConfig(Config{Command: CommandAllDeps})
		assert.ErrorContains(t, err, "component name is required")
	})

	t.Run("unknown command rejected", func(t *testing.T) {
		_, err := NewConfig(Config{Command: "rebuild", Component: "x"})
		assert.ErrorContains(t, err, "unknown command")
	})
}
