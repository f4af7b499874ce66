// Package app wires the resolver together: it owns the logger, loads the
// component registry (built-in or manifest), builds the dependency graph,
// and dispatches the parsed CLI command against it. Result ids go to the
// output writer one per line; everything diagnostic goes through slog.
package app
