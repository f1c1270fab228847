// Package fx provides the numeric type Num and its operations. The
// representation is chosen at build time:
//
//   - by default Num is a Q16.16 fixed-point value ([fixed.Int16_16]),
//     multiply and divide are the fast variants that drop low bits
//   - with the fxfloat build tag Num is a native float32 ([fixed.Float32]) and
//     every operation is the plain floating point one
//
// Both builds export the same identifiers with the same signatures, so code
// written against fx compiles unchanged with either.
//
// Overflow wraps silently under the fixed-point backend. Dividing by a value
// that is zero after scaling panics with an integer divide by zero. Sin, Cos,
// Tan and Sqrt convert to float32 and back, they are not usable on targets
// without an FPU.
package fx

func Add(a, b Num) Num { return a + b }
func Sub(a, b Num) Num { return a - b }

func Negate(a Num) Num        { return a.Neg() }
func AbsoluteValue(a Num) Num { return a.Abs() }

// Multiply is the fast multiplication, see [fixed.Int16_16.Mul].
func Multiply(a, b Num) Num { return a.Mul(b) }

// MultiplyExact multiplies using a widened intermediate.
func MultiplyExact(a, b Num) Num { return a.MulExact(b) }

// Divide is the fast division, see [fixed.Int16_16.Div].
func Divide(a, b Num) Num { return a.Div(b) }

// Divide2 is DivideAdjusted with an adjustment of 2, for dividends that are
// known to be small compared to the divisor.
func Divide2(a, b Num) Num { return a.Div2(b) }

// DivideAdjusted is Divide with adj bits of precision moved from the dividend
// to the divisor.
func DivideAdjusted(a, b Num, adj int) Num { return a.DivAdj(b, adj) }

// DivideExact divides using a widened intermediate.
func DivideExact(a, b Num) Num { return a.DivExact(b) }

func Sin(x Num) Num  { return x.Sin() }
func Cos(x Num) Num  { return x.Cos() }
func Tan(x Num) Num  { return x.Tan() }
func Sqrt(x Num) Num { return x.Sqrt() }

func Less(a, b Num) bool { return a < b }

func ToFloat(v Num) float32 { return v.Float() }
