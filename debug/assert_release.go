//go:build !debug

// Package debug provides assertions that can be enabled with the debug build
// tag or will otherwise compile to no-ops.
//
// The fx packages promise silent wraparound on overflow. Building with the
// debug tag turns the cheap precondition checks on, e.g. integers that don't
// fit the fixed-point range or shift amounts that would go negative.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// AssertRange panics if v is not within [lo, hi].
func AssertRange(v, lo, hi int, what string) {}
