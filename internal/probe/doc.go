// Package probe decides whether a component's build artifacts are already
// present under an install root. It is a read-only, best-effort layer: every
// ambiguity and every I/O failure resolves to "not built", because the cost
// of a false negative is only a redundant rebuild while a false positive
// leaves an incomplete install tree in play.
package probe
