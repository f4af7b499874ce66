// Package component defines the data model shared by the resolver: the
// component record itself, its kind, the artifact checks that prove it has
// been built, and the pure name-normalization rules applied to raw input
// before any registry lookup.
package component
