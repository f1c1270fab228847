package fixed

import (
	"fmt"

	"github.com/chewxy/math32"
	imgfixed "golang.org/x/image/math/fixed"

	"github.com/clktmr/fx/debug"
)

const (
	Int2_14Frac                 = 14
	Int2_14One          Int2_14 = 1 << 14
	Int2_14FractionMask Int2_14 = 1<<14 - 1
	Int2_14WholeMask    Int2_14 = ^Int2_14FractionMask
	Int2_14Min          Int2_14 = -1 << 15
	Int2_14Max          Int2_14 = 1<<15 - 1
)

func Int2_14U(i int) Int2_14     { return Int2_14(i << 14) }
func Int2_14F(f float32) Int2_14 { return Int2_14(f * (1 << 14)) }

func Int2_14FromInt26_6(v imgfixed.Int26_6) Int2_14   { return Int2_14(rescale(int64(v), 6, 14)) }
func Int2_14FromInt52_12(v imgfixed.Int52_12) Int2_14 { return Int2_14(rescale(int64(v), 12, 14)) }

func (x Int2_14) Floor() int            { return int(x >> 14) }
func (x Int2_14) Ceil() int             { return int((int32(x) + (1<<14 - 1)) >> 14) }
func (x Int2_14) Float() float32        { return float32(x) / (1 << 14) }
func (x Int2_14) FractionPart() Int2_14 { return x & Int2_14FractionMask }
func (x Int2_14) WholePart() Int2_14    { return x & Int2_14WholeMask }

func (x Int2_14) Neg() Int2_14 { return -x }
func (x Int2_14) Abs() Int2_14 {
	if x < Int2_14F(0) {
		return -x
	}
	return x
}

// Mul drops the low 7 bits of both operands to stay within int16.
func (x Int2_14) Mul(y Int2_14) Int2_14      { return (x >> 7) * (y >> 7) }
func (x Int2_14) MulExact(y Int2_14) Int2_14 { return Int2_14((int32(x) * int32(y)) >> 14) }

// Div drops the low 7 bits of y and the high 7 bits of x to stay within int16.
func (x Int2_14) Div(y Int2_14) Int2_14      { return (x << 7) / (y >> 7) }
func (x Int2_14) Div2(y Int2_14) Int2_14     { return x.DivAdj(y, 2) }
func (x Int2_14) DivExact(y Int2_14) Int2_14 { return Int2_14(int32(x) << 14 / int32(y)) }

// DivAdj moves adj bits of precision from x to y compared to Div.
func (x Int2_14) DivAdj(y Int2_14, adj int) Int2_14 {
	debug.AssertRange(adj, -7, 7, "division adjustment")
	return (x << (7 - adj)) / (y >> (7 + adj))
}

func (x Int2_14) Sin() Int2_14  { return Int2_14F(math32.Sin(x.Float())) }
func (x Int2_14) Cos() Int2_14  { return Int2_14F(math32.Cos(x.Float())) }
func (x Int2_14) Tan() Int2_14  { return Int2_14F(math32.Tan(x.Float())) }
func (x Int2_14) Sqrt() Int2_14 { return Int2_14F(math32.Sqrt(x.Float())) }

func (x Int2_14) Int26_6() imgfixed.Int26_6   { return imgfixed.Int26_6(rescale(int64(x), 14, 6)) }
func (x Int2_14) Int52_12() imgfixed.Int52_12 { return imgfixed.Int52_12(rescale(int64(x), 14, 12)) }

func (x Int2_14) String() string {
	const shift, mask = 14, 1<<14 - 1
	return fmt.Sprintf("%d:%05d", int32(x>>shift), int32(x&mask))
}
