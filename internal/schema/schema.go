// Package schema defines the HCL shapes of a component manifest file. These
// structs are decode targets only; translation into the registry model lives
// in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// Artifacts represents the optional 'artifacts' block of a component. When
// the block is absent, default artifact checks are derived from the
// component's id and kind.
type Artifacts struct {
	// Dirs are install-root-relative paths that must exist as directories.
	Dirs []string `hcl:"dirs,optional"`
	// Files are install-root-relative paths that must exist as regular files.
	Files []string `hcl:"files,optional"`
}

// Component represents a `component` block from a registry manifest.
type Component struct {
	ID   string `hcl:"id,label"`
	Kind string `hcl:"kind"`
	// DependsOn stays an expression so that the loader can evaluate and
	// type-check it with a useful diagnostic instead of a bare decode error.
	DependsOn hcl.Expression `hcl:"depends_on,optional"`
	Artifacts *Artifacts     `hcl:"artifacts,block"`
}

// ManifestFile represents the top-level structure of a registry manifest.
type ManifestFile struct {
	Components []*Component `hcl:"component,block"`
	Body       hcl.Body     `hcl:",remain"`
}
