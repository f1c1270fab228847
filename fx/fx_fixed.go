//go:build !fxfloat

package fx

import (
	"github.com/clktmr/fx/debug"
	"github.com/clktmr/fx/fixed"
)

// Fixed reports whether Num is a fixed-point type.
const Fixed = true

// Scale is the number of fractional bits of Num.
const Scale = fixed.Int16_16Frac

// Epsilon is the difference between 1 and the next representable value.
const Epsilon float32 = 1.0 / (1 << Scale)

// Integers in [MinInt, MaxInt] convert to Num without overflow.
const (
	MinInt = -1 << (31 - Scale)
	MaxInt = 1<<(31-Scale) - 1
)

type Num = fixed.Int16_16

const (
	Zero Num = 0
	One  Num = fixed.Int16_16One
)

// FromFloat truncates f*2^Scale toward zero.
func FromFloat(f float32) Num { return fixed.Int16_16F(f) }

func FromInt(i int) Num {
	debug.AssertRange(i, MinInt, MaxInt, "fx: integer")
	return fixed.Int16_16U(i)
}

// ToInt rounds toward negative infinity.
func ToInt(v Num) int { return v.Floor() }

func Backend() string { return "fixed Q16.16" }
