//go:build debug

package debug

import "fmt"

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = true

func AssertRange(v, lo, hi int, what string) {
	if v < lo || v > hi {
		panic(fmt.Sprintf("%s out of range: %d not in [%d, %d]", what, v, lo, hi))
	}
}
