package component

import "fmt"

// Kind classifies a component and selects which artifact rules apply to it.
type Kind string

const (
	// KindNativeDependency is a native library in the client's dependency chain.
	KindNativeDependency Kind = "native-dependency"
	// KindNativeClient is the top-level native transfer client.
	KindNativeClient Kind = "native-client"
	// KindManagedClient is a client whose toolchain manages its own build state.
	KindManagedClient Kind = "managed-client"
	// KindRunner is a benchmark runner executable.
	KindRunner Kind = "runner"
)

// ParseKind converts manifest text into a Kind. The empty string is not a
// valid kind; components always declare one.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindNativeDependency, KindNativeClient, KindManagedClient, KindRunner:
		return k, nil
	}
	return "", fmt.Errorf("unknown component kind: %q", s)
}

// Artifact is a single filesystem check, relative to an install root. A
// component counts as built only when every one of its artifacts passes.
type Artifact struct {
	// Path is slash-separated and relative to the install root.
	Path string
	// Dir selects the check: directory when true, regular file otherwise.
	Dir bool
}

// Component is a buildable unit tracked by the resolver.
type Component struct {
	// ID is the canonical identifier, unique across the registry.
	ID string
	// Kind selects the artifact rules for this component.
	Kind Kind
	// DependsOn lists direct dependencies in declared order. The order is
	// preserved through closure computation for deterministic output.
	DependsOn []string
	// Artifacts is the filesystem evidence that proves this component has
	// been built and installed.
	Artifacts []Artifact
}

// DefaultArtifacts derives the artifact set for a component from its id and
// kind, matching the install layout the build scripts produce:
//
//   - native libraries install a cmake package-config directory, a static
//     archive, and a header directory named without the family prefix;
//   - runners install a single executable under bin/;
//   - managed clients install nothing the prober can trust, so they get an
//     empty set and always probe as not built.
func DefaultArtifacts(id string, kind Kind) []Artifact {
	switch kind {
	case KindNativeDependency, KindNativeClient:
		return []Artifact{
			{Path: "lib/cmake/" + id, Dir: true},
			{Path: "lib/lib" + id + ".a"},
			{Path: "include/aws/" + HeaderDirName(id), Dir: true},
		}
	case KindRunner:
		return []Artifact{{Path: "bin/" + id}}
	}
	return nil
}
