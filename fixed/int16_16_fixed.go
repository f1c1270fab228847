package fixed

import (
	"fmt"

	"github.com/chewxy/math32"
	imgfixed "golang.org/x/image/math/fixed"

	"github.com/clktmr/fx/debug"
)

const (
	Int16_16Frac                  = 16
	Int16_16One          Int16_16 = 1 << 16
	Int16_16FractionMask Int16_16 = 1<<16 - 1
	Int16_16WholeMask    Int16_16 = ^Int16_16FractionMask
	Int16_16Min          Int16_16 = -1 << 31
	Int16_16Max          Int16_16 = 1<<31 - 1
)

func Int16_16U(i int) Int16_16     { return Int16_16(i << 16) }
func Int16_16F(f float32) Int16_16 { return Int16_16(f * (1 << 16)) }

func Int16_16FromInt26_6(v imgfixed.Int26_6) Int16_16   { return Int16_16(rescale(int64(v), 6, 16)) }
func Int16_16FromInt52_12(v imgfixed.Int52_12) Int16_16 { return Int16_16(rescale(int64(v), 12, 16)) }

func (x Int16_16) Floor() int             { return int(x >> 16) }
func (x Int16_16) Ceil() int              { return int((int64(x) + (1<<16 - 1)) >> 16) }
func (x Int16_16) Float() float32         { return float32(x) / (1 << 16) }
func (x Int16_16) FractionPart() Int16_16 { return x & Int16_16FractionMask }
func (x Int16_16) WholePart() Int16_16    { return x & Int16_16WholeMask }

func (x Int16_16) Neg() Int16_16 { return -x }
func (x Int16_16) Abs() Int16_16 {
	if x < Int16_16F(0) {
		return -x
	}
	return x
}

// Mul drops the low 8 bits of both operands to stay within int32.
func (x Int16_16) Mul(y Int16_16) Int16_16      { return (x >> 8) * (y >> 8) }
func (x Int16_16) MulExact(y Int16_16) Int16_16 { return Int16_16((int64(x) * int64(y)) >> 16) }

// Div drops the low 8 bits of y and the high 8 bits of x to stay within int32.
func (x Int16_16) Div(y Int16_16) Int16_16      { return (x << 8) / (y >> 8) }
func (x Int16_16) Div2(y Int16_16) Int16_16     { return x.DivAdj(y, 2) }
func (x Int16_16) DivExact(y Int16_16) Int16_16 { return Int16_16(int64(x) << 16 / int64(y)) }

// DivAdj moves adj bits of precision from x to y compared to Div.
func (x Int16_16) DivAdj(y Int16_16, adj int) Int16_16 {
	debug.AssertRange(adj, -8, 8, "division adjustment")
	return (x << (8 - adj)) / (y >> (8 + adj))
}

func (x Int16_16) Sin() Int16_16  { return Int16_16F(math32.Sin(x.Float())) }
func (x Int16_16) Cos() Int16_16  { return Int16_16F(math32.Cos(x.Float())) }
func (x Int16_16) Tan() Int16_16  { return Int16_16F(math32.Tan(x.Float())) }
func (x Int16_16) Sqrt() Int16_16 { return Int16_16F(math32.Sqrt(x.Float())) }

func (x Int16_16) Int26_6() imgfixed.Int26_6   { return imgfixed.Int26_6(rescale(int64(x), 16, 6)) }
func (x Int16_16) Int52_12() imgfixed.Int52_12 { return imgfixed.Int52_12(rescale(int64(x), 16, 12)) }

func (x Int16_16) String() string {
	const shift, mask = 16, 1<<16 - 1
	return fmt.Sprintf("%d:%05d", int64(x>>shift), int64(x&mask))
}
