package fixed

// Int32 is a plain integer coordinate, e.g. a pixel or grid cell. Mul and Div
// are the native operations.
type Int32 int32

type Point32 = Point[Int32]
type Rectangle32 = Rectangle[Int32]

func (x Int32) Mul(y Int32) Int32 { return x * y }
func (x Int32) Div(y Int32) Int32 { return x / y }

// Flooring is implemented by the fixed-point formats and Float32.
type Flooring interface {
	Floor() int
}

// PtFloor rounds p down to integer coordinates.
func PtFloor[T interface {
	Number[T]
	Flooring
}](p Point[T]) Point32 {
	return Point32{Int32(p.X.Floor()), Int32(p.Y.Floor())}
}

// RectFloor returns the integer rectangle covering r.
func RectFloor[T interface {
	Number[T]
	Flooring
	Ceil() int
}](r Rectangle[T]) Rectangle32 {
	return Rectangle32{
		Min: PtFloor(r.Min),
		Max: Point32{Int32(r.Max.X.Ceil()), Int32(r.Max.Y.Ceil())},
	}
}
