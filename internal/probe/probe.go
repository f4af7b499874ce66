package probe

import (
	"context"
	"path/filepath"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/ctxlog"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/fsutil"
)

// IsBuilt reports whether all of a component's artifacts are present under
// the install root. A component with no artifact checks (managed clients,
// whose toolchains track their own incremental state) always reports false:
// the caller's fallback is a rebuild, which is safe; trusting a stale tree
// is not.
//
// Filesystem errors are never propagated. A root that is missing, unreadable,
// or not a directory simply reads as "not built".
func IsBuilt(ctx context.Context, c component.Component, installRoot string) bool {
	logger := ctxlog.FromContext(ctx)

	if len(c.Artifacts) == 0 {
		logger.Debug("Component has no probe-visible artifacts, reporting not built.", "component", c.ID)
		return false
	}

	// All checks must pass. A partial artifact set, such as an archive left
	// behind by an interrupted install, still counts as not built.
	for _, a := range c.Artifacts {
		path := filepath.Join(installRoot, filepath.FromSlash(a.Path))
		ok := fsutil.FileExists(path)
		if a.Dir {
			ok = fsutil.DirExists(path)
		}
		if !ok {
			logger.Debug("Artifact missing, reporting not built.", "component", c.ID, "path", path)
			return false
		}
	}

	logger.Debug("All artifacts present.", "component", c.ID, "count", len(c.Artifacts))
	return true
}
