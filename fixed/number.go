package fixed

import "golang.org/x/exp/constraints"

// Number is satisfied by every type in this package. Addition and subtraction
// use the native operators, which are exact for all formats since both
// operands share the same scale.
type Number[T any] interface {
	constraints.Integer | constraints.Float
	Mul(T) T
	Div(T) T
}

// Real is satisfied by the fixed-point formats and by [Float32]. Code written
// against Real compiles unchanged for either representation.
type Real[T any] interface {
	Number[T]
	MulExact(T) T
	DivExact(T) T
	Neg() T
	Abs() T
	Sin() T
	Cos() T
	Tan() T
	Sqrt() T
	Floor() int
	Ceil() int
	Float() float32
}

// Lerp interpolates between a and b, t is expected to be in [0, 1].
func Lerp[T Real[T]](a, b, t T) T {
	return a + (b - a).Mul(t)
}

// Clamp limits x to [lo, hi].
func Clamp[T Number[T]](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
