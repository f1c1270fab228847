package fx_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clktmr/fx/fx"
	fxtesting "github.com/clktmr/fx/testing"
)

func TestMain(m *testing.M) { fxtesting.TestMain(m) }

func newRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestIntRoundTrip(t *testing.T) {
	step := (fx.MaxInt - fx.MinInt) / 4093
	for i := fx.MinInt; i <= fx.MaxInt; i += step {
		if got := fx.ToInt(fx.FromInt(i)); got != i {
			t.Fatalf("ToInt(FromInt(%d)) = %d", i, got)
		}
	}
	for _, i := range []int{fx.MinInt, -1, 0, 1, fx.MaxInt} {
		assert.Equal(t, i, fx.ToInt(fx.FromInt(i)))
	}
}

func TestFloatRoundTrip(t *testing.T) {
	r := newRand()
	for range 10000 {
		x := (r.Float32()*2 - 1) * float32(fx.MaxInt)
		got := fx.ToFloat(fx.FromFloat(x))
		if diff := math.Abs(float64(got) - float64(x)); diff >= float64(fx.Epsilon) {
			t.Fatalf("ToFloat(FromFloat(%v)) = %v, off by %v", x, got, diff)
		}
	}
}

func TestAddExact(t *testing.T) {
	r := newRand()
	for range 10000 {
		a := (r.Float32()*2 - 1) * 1000
		b := (r.Float32()*2 - 1) * 1000
		x, y := fx.FromFloat(a), fx.FromFloat(b)
		sum := fx.Add(x, y)
		if fx.Fixed {
			// integer addition has no rounding of its own
			assert.Equal(t, x, fx.Sub(sum, y))
		}
		// only the rounding of each operand contributes to the error
		want := float64(fx.ToFloat(x)) + float64(fx.ToFloat(y))
		fxtesting.EqualTol(t, want, float64(fx.ToFloat(sum)), 1e-3)
	}
}

func TestNegate(t *testing.T) {
	r := newRand()
	for range 10000 {
		v := fx.FromFloat((r.Float32()*2 - 1) * 30000)
		assert.Equal(t, v, fx.Negate(fx.Negate(v)))
		assert.Equal(t, fx.Zero, fx.Add(v, fx.Negate(v)))
	}
}

func TestAbsoluteValue(t *testing.T) {
	tests := []struct {
		in, out float32
	}{
		{0, 0}, {1, 1}, {-1, 1}, {-0.5, 0.5}, {0.25, 0.25},
		{-1234.75, 1234.75}, {32767, 32767}, {-32767, 32767},
	}

	for i, test := range tests {
		out := fx.AbsoluteValue(fx.FromFloat(test.in))
		if out != fx.FromFloat(test.out) {
			t.Fatalf("test #%d: in %v expected out %v, but got %v", i, test.in, test.out, out)
		}
	}
}

func TestLess(t *testing.T) {
	assert.True(t, fx.Less(fx.FromFloat(-0.5), fx.Zero))
	assert.True(t, fx.Less(fx.Zero, fx.One))
	assert.False(t, fx.Less(fx.One, fx.One))
	assert.False(t, fx.Less(fx.FromInt(2), fx.FromFloat(1.5)))
}

func TestOne(t *testing.T) {
	assert.Equal(t, fx.FromInt(1), fx.One)
	assert.Equal(t, fx.FromFloat(0), fx.Zero)
	assert.Equal(t, float32(1), fx.ToFloat(fx.One))
}

func TestTranscendental(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(fx.Num) fx.Num
		ref      func(float64) float64
		from, to float32
		tol      float64
	}{
		{"sin", fx.Sin, math.Sin, -10, 10, 3e-5},
		{"cos", fx.Cos, math.Cos, -10, 10, 3e-5},
		{"tan", fx.Tan, math.Tan, -1.2, 1.2, 1e-4},
		{"sqrt", fx.Sqrt, math.Sqrt, 0, 1000, 1e-4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			const n = 1000
			for i := range n + 1 {
				x := fx.FromFloat(test.from + (test.to-test.from)*float32(i)/n)
				want := test.ref(float64(fx.ToFloat(x)))
				if !fxtesting.EqualNum(t, want, test.fn(x), test.tol, "%s(%v)", test.name, x) {
					return
				}
			}
		})
	}
}

// The fast and exact variants agree for operands that lose no bits.
func TestFastMatchesExact(t *testing.T) {
	tests := []struct {
		a, b float32
	}{
		{1, 1}, {2, 3}, {-2, 3}, {0.5, 4}, {-8, -0.25}, {100, 1.5}, {0, 7},
	}

	for _, test := range tests {
		a, b := fx.FromFloat(test.a), fx.FromFloat(test.b)
		assert.Equal(t, fx.MultiplyExact(a, b), fx.Multiply(a, b), "%v * %v", test.a, test.b)
		if test.a != 0 {
			assert.Equal(t, fx.DivideExact(b, a), fx.Divide(b, a), "%v / %v", test.b, test.a)
		}
	}
}

func TestDivideAdjusted(t *testing.T) {
	a, b := fx.FromInt(3), fx.FromInt(4)
	assert.Equal(t, fx.Divide(a, b), fx.DivideAdjusted(a, b, 0))
	assert.Equal(t, fx.DivideAdjusted(a, b, 2), fx.Divide2(a, b))
	fxtesting.EqualNum(t, 0.75, fx.Divide2(a, b), 1e-3)
	fxtesting.EqualNum(t, 0.75, fx.DivideAdjusted(a, b, -2), 1e-3)
}
