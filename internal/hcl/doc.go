// Package hcl loads component registry manifests written in HCL. It is the
// escape hatch from the built-in table: an operator can point the resolver
// at a manifest describing a different component graph without recompiling.
// The package owns all file parsing and HCL-to-model translation; the
// registry package never sees HCL.
package hcl
