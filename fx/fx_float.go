//go:build fxfloat

package fx

import "github.com/clktmr/fx/fixed"

// Fixed reports whether Num is a fixed-point type.
const Fixed = false

// Scale is the number of fractional bits of Num, a float has none.
const Scale = 0

// Epsilon is the difference between 1 and the next representable value.
const Epsilon float32 = 1.0 / (1 << 23)

// Integers in [MinInt, MaxInt] convert to Num without loss.
const (
	MinInt = -1 << 24
	MaxInt = 1 << 24
)

type Num = fixed.Float32

const (
	Zero Num = 0
	One  Num = 1
)

func FromFloat(f float32) Num { return fixed.Float32F(f) }
func FromInt(i int) Num       { return fixed.Float32U(i) }

// ToInt truncates toward zero.
func ToInt(v Num) int { return int(v) }

func Backend() string { return "float32" }
