// Package testing provides utilities shared by the fx tests.
package testing

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clktmr/fx/fx"
)

// TestMain should be used as TestMain for tests whose expectations depend on
// the selected backend. It reports the backend before running the tests.
func TestMain(m *testing.M) {
	fmt.Printf("fx backend: %s\n", fx.Backend())
	os.Exit(m.Run())
}

// EqualTol asserts that actual is within tol of expected.
func EqualTol(t testing.TB, expected, actual, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, tol, msgAndArgs...)
}

// EqualNum asserts that the value of actual is within tol of expected.
func EqualNum(t testing.TB, expected float64, actual fx.Num, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, float64(fx.ToFloat(actual)), tol, msgAndArgs...)
}

// Panics reports whether f panicked, and with what.
func Panics(f func()) (panicked bool, value any) {
	defer func() {
		if value = recover(); value != nil {
			panicked = true
		}
	}()
	f()
	return
}
