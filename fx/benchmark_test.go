package fx_test

import (
	"testing"

	"github.com/clktmr/fx/fx"
)

var sink fx.Num

func operands() (a, b fx.Num) { return fx.FromFloat(3.25), fx.FromFloat(-1.75) }

func BenchmarkMultiply(b *testing.B) {
	x, y := operands()
	for b.Loop() {
		sink = fx.Multiply(x, y)
	}
}

func BenchmarkMultiplyExact(b *testing.B) {
	x, y := operands()
	for b.Loop() {
		sink = fx.MultiplyExact(x, y)
	}
}

func BenchmarkDivide(b *testing.B) {
	x, y := operands()
	for b.Loop() {
		sink = fx.Divide(x, y)
	}
}

func BenchmarkDivideExact(b *testing.B) {
	x, y := operands()
	for b.Loop() {
		sink = fx.DivideExact(x, y)
	}
}

func BenchmarkSin(b *testing.B) {
	x, _ := operands()
	for b.Loop() {
		sink = fx.Sin(x)
	}
}
