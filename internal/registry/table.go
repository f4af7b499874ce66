package registry

import "github.com/azkrishpy/aws-crt-benchmarker/internal/component"

// builtinDefs is the shipped component table. It mirrors the dependency
// chain of the native transfer stack: common utilities at the bottom, then
// crypto/TLS, platform I/O, checksums and compression, HTTP, SDK utilities,
// auth, and the s3 client on top. Managed-language clients stand alone, and
// each runner depends on exactly the client it benchmarks.
//
// Dependency order within each entry is build order; closure output
// preserves it.
func builtinDefs() []component.Component {
	dep := func(id string, deps ...string) component.Component {
		return component.Component{ID: id, Kind: component.KindNativeDependency, DependsOn: deps}
	}

	return []component.Component{
		dep("aws-c-common"),

		// aws-lc and s2n install their headers outside the aws/ include
		// namespace, so they carry explicit artifact sets.
		{
			ID:        "aws-lc",
			Kind:      component.KindNativeDependency,
			DependsOn: []string{"aws-c-common"},
			Artifacts: []component.Artifact{
				{Path: "lib/cmake/aws-lc", Dir: true},
				{Path: "lib/libcrypto.a"},
				{Path: "lib/libssl.a"},
				{Path: "include/openssl", Dir: true},
			},
		},
		{
			ID:        "s2n",
			Kind:      component.KindNativeDependency,
			DependsOn: []string{"aws-c-common"},
			Artifacts: []component.Artifact{
				{Path: "lib/cmake/s2n", Dir: true},
				{Path: "lib/libs2n.a"},
				{Path: "include/s2n.h"},
			},
		},

		dep("aws-c-cal", "aws-c-common", "aws-lc", "s2n"),
		dep("aws-c-io", "aws-c-common", "aws-c-cal", "s2n"),
		dep("aws-checksums", "aws-c-common"),
		dep("aws-c-compression", "aws-c-common"),
		dep("aws-c-http", "aws-c-common", "aws-c-io", "aws-c-compression"),
		dep("aws-c-sdkutils", "aws-c-common"),
		dep("aws-c-auth", "aws-c-common", "aws-c-io", "aws-c-http", "aws-c-sdkutils", "aws-c-cal"),

		{
			ID:   "aws-c-s3",
			Kind: component.KindNativeClient,
			DependsOn: []string{
				"aws-c-common", "aws-lc", "s2n", "aws-c-cal", "aws-c-io",
				"aws-checksums", "aws-c-compression", "aws-c-http",
				"aws-c-sdkutils", "aws-c-auth",
			},
		},

		{ID: "aws-s3-transfer-manager-rs", Kind: component.KindManagedClient},

		{ID: "runner-s3-c", Kind: component.KindRunner, DependsOn: []string{"aws-c-s3"}},
		{ID: "runner-s3-rust", Kind: component.KindRunner, DependsOn: []string{"aws-s3-transfer-manager-rs"}},
	}
}

// Builtin returns the shipped registry. The table is static data, so a
// validation failure is a programmer error and panics.
func Builtin() *Registry {
	r, err := New(builtinDefs())
	if err != nil {
		panic(err)
	}
	return r
}
