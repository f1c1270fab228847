package fixed

import "fmt"

// A Point is an X, Y coordinate pair. The axes increase right and down.
type Point[T Number[T]] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X, Y}.
func Pt[T Number[T]](x, y T) Point[T] {
	return Point[T]{x, y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{p.X + q.X, p.Y + q.Y} }
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{p.X - q.X, p.Y - q.Y} }
func (p Point[T]) Mul(k T) Point[T]        { return Point[T]{p.X.Mul(k), p.Y.Mul(k)} }
func (p Point[T]) Div(k T) Point[T]        { return Point[T]{p.X.Div(k), p.Y.Div(k)} }
func (p Point[T]) Dot(q Point[T]) T        { return p.X.Mul(q.X) + p.Y.Mul(q.Y) }
func (p Point[T]) Eq(q Point[T]) bool      { return p == q }

// In reports whether p is in r.
func (p Point[T]) In(r Rectangle[T]) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Len returns the euclidean length of p.
func Len[T Real[T]](p Point[T]) T {
	return (p.X.Mul(p.X) + p.Y.Mul(p.Y)).Sqrt()
}

// Rotate rotates p around the origin by angle radians.
func Rotate[T Real[T]](p Point[T], angle T) Point[T] {
	sin, cos := angle.Sin(), angle.Cos()
	return Point[T]{
		p.X.Mul(cos) - p.Y.Mul(sin),
		p.X.Mul(sin) + p.Y.Mul(cos),
	}
}

// A Rectangle contains the points with Min.X <= X < Max.X, Min.Y <= Y < Max.Y.
// It is well-formed if Min.X <= Max.X and likewise for Y.
type Rectangle[T Number[T]] struct {
	Min, Max Point[T]
}

// Rect is shorthand for Rectangle[T]{Pt(x0, y0), Pt(x1, y1)}. The returned
// rectangle has minimum and maximum coordinates swapped if necessary so that
// it is well-formed.
func Rect[T Number[T]](x0, y0, x1, y1 T) Rectangle[T] {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rectangle[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

func (r Rectangle[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

func (r Rectangle[T]) Dx() T          { return r.Max.X - r.Min.X }
func (r Rectangle[T]) Dy() T          { return r.Max.Y - r.Min.Y }
func (r Rectangle[T]) Size() Point[T] { return r.Max.Sub(r.Min) }

func (r Rectangle[T]) Add(p Point[T]) Rectangle[T] {
	return Rectangle[T]{r.Min.Add(p), r.Max.Add(p)}
}

func (r Rectangle[T]) Sub(p Point[T]) Rectangle[T] {
	return Rectangle[T]{r.Min.Sub(p), r.Max.Sub(p)}
}

// Inset returns r inset by n, which may be negative. If either of r's
// dimensions is less than 2*n then an empty rectangle near the center of r
// will be returned.
func (r Rectangle[T]) Inset(n T) Rectangle[T] {
	if r.Dx() < n+n {
		r.Min.X = (r.Min.X + r.Max.X) / 2
		r.Max.X = r.Min.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < n+n {
		r.Min.Y = (r.Min.Y + r.Max.Y) / 2
		r.Max.Y = r.Min.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}

// Intersect returns the largest rectangle contained by both r and s. If the
// two rectangles do not overlap then the zero rectangle will be returned.
func (r Rectangle[T]) Intersect(s Rectangle[T]) Rectangle[T] {
	r.Min.X = max(r.Min.X, s.Min.X)
	r.Min.Y = max(r.Min.Y, s.Min.Y)
	r.Max.X = min(r.Max.X, s.Max.X)
	r.Max.Y = min(r.Max.Y, s.Max.Y)
	if r.Empty() {
		return Rectangle[T]{}
	}
	return r
}

// Union returns the smallest rectangle that contains both r and s.
func (r Rectangle[T]) Union(s Rectangle[T]) Rectangle[T] {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	r.Min.X = min(r.Min.X, s.Min.X)
	r.Min.Y = min(r.Min.Y, s.Min.Y)
	r.Max.X = max(r.Max.X, s.Max.X)
	r.Max.Y = max(r.Max.Y, s.Max.Y)
	return r
}

// Empty reports whether the rectangle contains no points.
func (r Rectangle[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Eq reports whether r and s contain the same set of points. All empty
// rectangles are considered equal.
func (r Rectangle[T]) Eq(s Rectangle[T]) bool {
	return r == s || r.Empty() && s.Empty()
}

// In reports whether every point in r is in s.
func (r Rectangle[T]) In(s Rectangle[T]) bool {
	if r.Empty() {
		return true
	}
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

// Canon returns the canonical version of r. The returned rectangle has minimum
// and maximum coordinates swapped if necessary so that it is well-formed.
func (r Rectangle[T]) Canon() Rectangle[T] {
	return Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
