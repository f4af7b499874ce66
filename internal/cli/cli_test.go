package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/app"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
)

func TestParse_Commands(t *testing.T) {
	t.Parallel()

	t.Run("all-deps", func(t *testing.T) {
		cfg, shouldExit, err := Parse([]string{"all-deps", "aws-c-s3"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, app.CommandAllDeps, cfg.Command)
		assert.Equal(t, "aws-c-s3", cfg.Component)
	})

	t.Run("is-built with install root", func(t *testing.T) {
		cfg, _, err := Parse([]string{"is-built", "aws-c-common", "/opt/install"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, app.CommandIsBuilt, cfg.Command)
		assert.Equal(t, "/opt/install", cfg.InstallRoot)
	})

	t.Run("kind hint flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-kind", "runner", "all-deps", "s3-c"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, component.KindRunner, cfg.KindHint)
		assert.Equal(t, "s3-c", cfg.Component)
	})

	t.Run("registry flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-registry", "custom.hcl", "deps", "a"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "custom.hcl", cfg.RegistryPath)
	})
}

func TestParse_HelpAndUsage(t *testing.T) {
	t.Parallel()

	t.Run("-h prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, shouldExit, err := Parse([]string{"-h"}, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("no arguments prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, shouldExit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Contains(t, out.String(), "Commands:")
	})
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	exitCode := func(t *testing.T, err error) int {
		t.Helper()
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		return exitErr.Code
	}

	t.Run("unknown command", func(t *testing.T) {
		_, _, err := Parse([]string{"frobnicate", "aws-c-common"}, &bytes.Buffer{})
		assert.Equal(t, 2, exitCode(t, err))
		assert.ErrorContains(t, err, "unknown command")
	})

	t.Run("missing component", func(t *testing.T) {
		_, _, err := Parse([]string{"all-deps"}, &bytes.Buffer{})
		assert.Equal(t, 2, exitCode(t, err))
	})

	t.Run("is-built without install root", func(t *testing.T) {
		_, _, err := Parse([]string{"is-built", "aws-c-common"}, &bytes.Buffer{})
		assert.Equal(t, 2, exitCode(t, err))
		assert.ErrorContains(t, err, "install root")
	})

	t.Run("bad kind hint", func(t *testing.T) {
		_, _, err := Parse([]string{"-kind", "gadget", "all-deps", "x"}, &bytes.Buffer{})
		assert.Equal(t, 2, exitCode(t, err))
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-level", "loud", "all-deps", "x"}, &bytes.Buffer{})
		assert.Equal(t, 2, exitCode(t, err))
	})

	t.Run("undefined flag", func(t *testing.T) {
		_, _, err := Parse([]string{"--no-such-flag"}, &bytes.Buffer{})
		assert.Equal(t, 2, exitCode(t, err))
	})
}
