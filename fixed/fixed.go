// Package fixed provides fixed-point arithmetic types.
//
// Every format is named Int<integer bits>_<fractional bits> and stores its
// value as a two's complement integer scaled by 2^fractional bits. All formats
// share one method set, generated from mkfixed.go, so they can be used
// interchangeably through the [Number] and [Real] constraints. [Float32]
// implements the same method set on top of native floating point.
//
// Overflow is never detected, results wrap around. Mul and Div trade
// precision for staying within the storage width, MulExact and DivExact use a
// widened intermediate instead. Division by zero panics. The transcendental
// methods round trip through float32 and therefore need an FPU.
package fixed

//go:generate go run mkfixed.go Int16_16 int32
type Int16_16 int32

//go:generate go run mkfixed.go Int24_8 int32
type Int24_8 int32

//go:generate go run mkfixed.go Int8_8 int16
type Int8_8 int16

//go:generate go run mkfixed.go Int2_14 int16
type Int2_14 int16

type Point16_16 = Point[Int16_16]
type Rectangle16_16 = Rectangle[Int16_16]

type Point24_8 = Point[Int24_8]
type Rectangle24_8 = Rectangle[Int24_8]

type Point8_8 = Point[Int8_8]
type Rectangle8_8 = Rectangle[Int8_8]

// rescale converts the raw value v with from fractional bits to to fractional
// bits. Narrowing rounds toward negative infinity.
func rescale(v int64, from, to uint) int64 {
	if from > to {
		return v >> (from - to)
	}
	return v << (to - from)
}
