// Package registry holds the ground truth of the dependency topology: the
// immutable table mapping every component id to its kind, its direct
// dependencies, and the artifact checks that prove it has been built.
//
// The shipped table (Builtin) covers the native transfer stack, the managed
// clients, and the benchmark runners. An alternative table can be loaded
// from an HCL manifest via the hclmanifest package; either way the registry
// is constructed and validated once at process start and never mutated.
package registry
