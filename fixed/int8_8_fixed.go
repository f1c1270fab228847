package fixed

import (
	"fmt"

	"github.com/chewxy/math32"
	imgfixed "golang.org/x/image/math/fixed"

	"github.com/clktmr/fx/debug"
)

const (
	Int8_8Frac                = 8
	Int8_8One          Int8_8 = 1 << 8
	Int8_8FractionMask Int8_8 = 1<<8 - 1
	Int8_8WholeMask    Int8_8 = ^Int8_8FractionMask
	Int8_8Min          Int8_8 = -1 << 15
	Int8_8Max          Int8_8 = 1<<15 - 1
)

func Int8_8U(i int) Int8_8     { return Int8_8(i << 8) }
func Int8_8F(f float32) Int8_8 { return Int8_8(f * (1 << 8)) }

func Int8_8FromInt26_6(v imgfixed.Int26_6) Int8_8   { return Int8_8(rescale(int64(v), 6, 8)) }
func Int8_8FromInt52_12(v imgfixed.Int52_12) Int8_8 { return Int8_8(rescale(int64(v), 12, 8)) }

func (x Int8_8) Floor() int           { return int(x >> 8) }
func (x Int8_8) Ceil() int            { return int((int32(x) + (1<<8 - 1)) >> 8) }
func (x Int8_8) Float() float32       { return float32(x) / (1 << 8) }
func (x Int8_8) FractionPart() Int8_8 { return x & Int8_8FractionMask }
func (x Int8_8) WholePart() Int8_8    { return x & Int8_8WholeMask }

func (x Int8_8) Neg() Int8_8 { return -x }
func (x Int8_8) Abs() Int8_8 {
	if x < Int8_8F(0) {
		return -x
	}
	return x
}

// Mul drops the low 4 bits of both operands to stay within int16.
func (x Int8_8) Mul(y Int8_8) Int8_8      { return (x >> 4) * (y >> 4) }
func (x Int8_8) MulExact(y Int8_8) Int8_8 { return Int8_8((int32(x) * int32(y)) >> 8) }

// Div drops the low 4 bits of y and the high 4 bits of x to stay within int16.
func (x Int8_8) Div(y Int8_8) Int8_8      { return (x << 4) / (y >> 4) }
func (x Int8_8) Div2(y Int8_8) Int8_8     { return x.DivAdj(y, 2) }
func (x Int8_8) DivExact(y Int8_8) Int8_8 { return Int8_8(int32(x) << 8 / int32(y)) }

// DivAdj moves adj bits of precision from x to y compared to Div.
func (x Int8_8) DivAdj(y Int8_8, adj int) Int8_8 {
	debug.AssertRange(adj, -4, 4, "division adjustment")
	return (x << (4 - adj)) / (y >> (4 + adj))
}

func (x Int8_8) Sin() Int8_8  { return Int8_8F(math32.Sin(x.Float())) }
func (x Int8_8) Cos() Int8_8  { return Int8_8F(math32.Cos(x.Float())) }
func (x Int8_8) Tan() Int8_8  { return Int8_8F(math32.Tan(x.Float())) }
func (x Int8_8) Sqrt() Int8_8 { return Int8_8F(math32.Sqrt(x.Float())) }

func (x Int8_8) Int26_6() imgfixed.Int26_6   { return imgfixed.Int26_6(rescale(int64(x), 8, 6)) }
func (x Int8_8) Int52_12() imgfixed.Int52_12 { return imgfixed.Int52_12(rescale(int64(x), 8, 12)) }

func (x Int8_8) String() string {
	const shift, mask = 8, 1<<8 - 1
	return fmt.Sprintf("%d:%03d", int32(x>>shift), int32(x&mask))
}
