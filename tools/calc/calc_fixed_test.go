//go:build !fxfloat

package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clktmr/fx/tools/calc"
)

func TestEvalFixed(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"fx 3", "3 (3:00000)"},
		{"fx -1.5", "-1.5 (-2:32768)"},
		{"int -1.5", "-2"},
		{"neg 2", "-2 (-2:00000)"},
		{"add 1.25 -0.5", "0.75 (0:49152)"},
		{"div 1 4", "0.25 (0:16384)"},
		{"divx 200 1", "200 (200:00000)"},
		{"div 200 1", "-56 (-56:00000)"}, // dividend overflows after the shift
		{"mulx 0.5 0.5", "0.25 (0:16384)"},
	}

	for _, test := range tests {
		result, err := calc.Eval(test.expr)
		require.NoError(t, err, test.expr)
		assert.Equal(t, test.want, result, test.expr)
	}
}

func TestEvalDivideByZero(t *testing.T) {
	for _, expr := range []string{"div 1 0", "divx 1 0", "div2 1 0", "div 1 0.001"} {
		_, err := calc.Eval(expr)
		assert.ErrorIs(t, err, calc.ErrDivideByZero, expr)
	}
}

func TestEvalAdjustmentRange(t *testing.T) {
	_, err := calc.Eval("divadj 1 1 9")
	assert.ErrorIs(t, err, calc.ErrAdjustment)
	_, err = calc.Eval("divadj 1 1 -8")
	assert.NoError(t, err)
}
