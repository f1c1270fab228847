//go:build fxfloat

package fx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clktmr/fx/fx"
)

func TestFloatBackend(t *testing.T) {
	assert.False(t, fx.Fixed)
	assert.Equal(t, "float32", fx.Backend())
	assert.Equal(t, float32(3.0), fx.ToFloat(fx.FromInt(3)))
	// native conversion truncates toward zero
	assert.Equal(t, -1, fx.ToInt(fx.FromFloat(-1.5)))
	assert.Equal(t, 1, fx.ToInt(fx.FromFloat(1.5)))
}

func TestFloatArithmeticExact(t *testing.T) {
	r := newRand()
	for range 10000 {
		a := (r.Float32()*2 - 1) * 1e4
		b := (r.Float32()*2 - 1) * 1e4
		x, y := fx.FromFloat(a), fx.FromFloat(b)
		assert.Equal(t, a*b, fx.ToFloat(fx.Multiply(x, y)))
		assert.Equal(t, a*b, fx.ToFloat(fx.MultiplyExact(x, y)))
		if b != 0 {
			assert.Equal(t, a/b, fx.ToFloat(fx.Divide(x, y)))
			assert.Equal(t, a/b, fx.ToFloat(fx.Divide2(x, y)))
			assert.Equal(t, a/b, fx.ToFloat(fx.DivideAdjusted(x, y, 5)))
		}
	}
}

func TestFloatDivideByZero(t *testing.T) {
	v := fx.ToFloat(fx.Divide(fx.FromInt(1), fx.FromInt(0)))
	assert.True(t, math.IsInf(float64(v), 1), "got %v", v)
	v = fx.ToFloat(fx.Divide(fx.Zero, fx.Zero))
	assert.True(t, math.IsNaN(float64(v)), "got %v", v)
}

func TestFloatOverflow(t *testing.T) {
	big := fx.FromFloat(math.MaxFloat32)
	v := fx.ToFloat(fx.Add(big, big))
	assert.True(t, math.IsInf(float64(v), 1), "got %v", v)
}
