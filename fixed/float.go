package fixed

import (
	"strconv"

	"github.com/chewxy/math32"
	imgfixed "golang.org/x/image/math/fixed"
)

// Float32 has the same method set as the fixed-point formats but stores a
// native float32. None of the precision trade-offs apply, the exact and the
// fast variants are the same operation. Overflow results in ±Inf, division by
// zero in ±Inf or NaN.
type Float32 float32

type PointF = Point[Float32]
type RectangleF = Rectangle[Float32]

func Float32U(i int) Float32     { return Float32(i) }
func Float32F(f float32) Float32 { return Float32(f) }

func Float32FromInt26_6(v imgfixed.Int26_6) Float32   { return Float32(v) / (1 << 6) }
func Float32FromInt52_12(v imgfixed.Int52_12) Float32 { return Float32(v) / (1 << 12) }

func (x Float32) Floor() int                 { return int(math32.Floor(float32(x))) }
func (x Float32) Ceil() int                  { return int(math32.Ceil(float32(x))) }
func (x Float32) Float() float32             { return float32(x) }
func (x Float32) FractionPart() Float32      { return x - x.WholePart() }
func (x Float32) WholePart() Float32         { return Float32(math32.Floor(float32(x))) }
func (x Float32) Neg() Float32               { return -x }
func (x Float32) Mul(y Float32) Float32      { return x * y }
func (x Float32) MulExact(y Float32) Float32 { return x * y }
func (x Float32) Div(y Float32) Float32      { return x / y }
func (x Float32) Div2(y Float32) Float32     { return x / y }
func (x Float32) DivExact(y Float32) Float32 { return x / y }

// Abs keeps the sign of -0.
func (x Float32) Abs() Float32 {
	if x < 0 {
		return -x
	}
	return x
}

// DivAdj ignores adj, there are no shifts to balance.
func (x Float32) DivAdj(y Float32, adj int) Float32 { return x / y }

func (x Float32) Sin() Float32  { return Float32(math32.Sin(float32(x))) }
func (x Float32) Cos() Float32  { return Float32(math32.Cos(float32(x))) }
func (x Float32) Tan() Float32  { return Float32(math32.Tan(float32(x))) }
func (x Float32) Sqrt() Float32 { return Float32(math32.Sqrt(float32(x))) }

func (x Float32) Int26_6() imgfixed.Int26_6   { return imgfixed.Int26_6(x * (1 << 6)) }
func (x Float32) Int52_12() imgfixed.Int52_12 { return imgfixed.Int52_12(x * (1 << 12)) }

func (x Float32) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}
