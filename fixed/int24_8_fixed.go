package fixed

import (
	"fmt"

	"github.com/chewxy/math32"
	imgfixed "golang.org/x/image/math/fixed"

	"github.com/clktmr/fx/debug"
)

const (
	Int24_8Frac                 = 8
	Int24_8One          Int24_8 = 1 << 8
	Int24_8FractionMask Int24_8 = 1<<8 - 1
	Int24_8WholeMask    Int24_8 = ^Int24_8FractionMask
	Int24_8Min          Int24_8 = -1 << 31
	Int24_8Max          Int24_8 = 1<<31 - 1
)

func Int24_8U(i int) Int24_8     { return Int24_8(i << 8) }
func Int24_8F(f float32) Int24_8 { return Int24_8(f * (1 << 8)) }

func Int24_8FromInt26_6(v imgfixed.Int26_6) Int24_8   { return Int24_8(rescale(int64(v), 6, 8)) }
func Int24_8FromInt52_12(v imgfixed.Int52_12) Int24_8 { return Int24_8(rescale(int64(v), 12, 8)) }

func (x Int24_8) Floor() int            { return int(x >> 8) }
func (x Int24_8) Ceil() int             { return int((int64(x) + (1<<8 - 1)) >> 8) }
func (x Int24_8) Float() float32        { return float32(x) / (1 << 8) }
func (x Int24_8) FractionPart() Int24_8 { return x & Int24_8FractionMask }
func (x Int24_8) WholePart() Int24_8    { return x & Int24_8WholeMask }

func (x Int24_8) Neg() Int24_8 { return -x }
func (x Int24_8) Abs() Int24_8 {
	if x < Int24_8F(0) {
		return -x
	}
	return x
}

// Mul drops the low 4 bits of both operands to stay within int32.
func (x Int24_8) Mul(y Int24_8) Int24_8      { return (x >> 4) * (y >> 4) }
func (x Int24_8) MulExact(y Int24_8) Int24_8 { return Int24_8((int64(x) * int64(y)) >> 8) }

// Div drops the low 4 bits of y and the high 4 bits of x to stay within int32.
func (x Int24_8) Div(y Int24_8) Int24_8      { return (x << 4) / (y >> 4) }
func (x Int24_8) Div2(y Int24_8) Int24_8     { return x.DivAdj(y, 2) }
func (x Int24_8) DivExact(y Int24_8) Int24_8 { return Int24_8(int64(x) << 8 / int64(y)) }

// DivAdj moves adj bits of precision from x to y compared to Div.
func (x Int24_8) DivAdj(y Int24_8, adj int) Int24_8 {
	debug.AssertRange(adj, -4, 4, "division adjustment")
	return (x << (4 - adj)) / (y >> (4 + adj))
}

func (x Int24_8) Sin() Int24_8  { return Int24_8F(math32.Sin(x.Float())) }
func (x Int24_8) Cos() Int24_8  { return Int24_8F(math32.Cos(x.Float())) }
func (x Int24_8) Tan() Int24_8  { return Int24_8F(math32.Tan(x.Float())) }
func (x Int24_8) Sqrt() Int24_8 { return Int24_8F(math32.Sqrt(x.Float())) }

func (x Int24_8) Int26_6() imgfixed.Int26_6   { return imgfixed.Int26_6(rescale(int64(x), 8, 6)) }
func (x Int24_8) Int52_12() imgfixed.Int52_12 { return imgfixed.Int52_12(rescale(int64(x), 8, 12)) }

func (x Int24_8) String() string {
	const shift, mask = 8, 1<<8 - 1
	return fmt.Sprintf("%d:%03d", int64(x>>shift), int64(x&mask))
}
