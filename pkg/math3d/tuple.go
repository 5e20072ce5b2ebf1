// Package math3d provides the homogeneous tuple and matrix algebra used by the
// Lumen ray tracer.
package math3d

import "math"

// Tuple is a 4-component homogeneous coordinate.
// Points carry W=1 and free vectors carry W=0; the distinction follows from
// the arithmetic rather than from the type.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a Tuple from its four components.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

// Point creates a point (W=1).
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector creates a free vector (W=0).
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

// Origin returns the point (0, 0, 0).
func Origin() Tuple {
	return Point(0, 0, 0)
}

// IsPoint reports whether W is exactly 1.
func (a Tuple) IsPoint() bool {
	return a.W == 1
}

// IsVector reports whether W is exactly 0.
func (a Tuple) IsVector() bool {
	return a.W == 0
}

// Add returns the component-wise sum a + b.
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the component-wise difference a - b.
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Negate returns -a.
func (a Tuple) Negate() Tuple {
	return Tuple{-a.X, -a.Y, -a.Z, -a.W}
}

// Scale returns the scalar product a * s.
func (a Tuple) Scale(s float64) Tuple {
	return Tuple{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div returns the scalar division a / s.
func (a Tuple) Div(s float64) Tuple {
	return Tuple{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

// Magnitude returns the length of all four components.
func (a Tuple) Magnitude() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

// Normalize returns a divided by its magnitude.
// A zero tuple yields NaN components.
func (a Tuple) Normalize() Tuple {
	return a.Div(a.Magnitude())
}

// Dot returns the four-component dot product a · b.
func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the cross product a × b of the xyz parts as a vector.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Reflect returns a reflected around normal n.
func (a Tuple) Reflect(n Tuple) Tuple {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// ApproxEqual reports whether every component agrees to ApproxDigits.
func (a Tuple) ApproxEqual(b Tuple) bool {
	return a.equalToDigits(b, ApproxDigits)
}

// NearlyEqual reports whether every component agrees to NearlyDigits.
func (a Tuple) NearlyEqual(b Tuple) bool {
	return a.equalToDigits(b, NearlyDigits)
}

func (a Tuple) equalToDigits(b Tuple, digits int) bool {
	return EqualToDigits(a.X, b.X, digits) &&
		EqualToDigits(a.Y, b.Y, digits) &&
		EqualToDigits(a.Z, b.Z, digits) &&
		EqualToDigits(a.W, b.W, digits)
}
