package math3d

import "math"

// Translation creates a translation matrix.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m.m[0][3] = x
	m.m[1][3] = y
	m.m[2][3] = z
	return m
}

// Scaling creates a scaling matrix.
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m.m[0][0] = x
	m.m[1][1] = y
	m.m[2][2] = z
	return m
}

// RotationX creates a rotation matrix around the X axis.
func RotationX(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return MatrixFromRows(
		[]float64{1, 0, 0, 0},
		[]float64{0, c, -s, 0},
		[]float64{0, s, c, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationY creates a rotation matrix around the Y axis.
func RotationY(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return MatrixFromRows(
		[]float64{c, 0, s, 0},
		[]float64{0, 1, 0, 0},
		[]float64{-s, 0, c, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationZ creates a rotation matrix around the Z axis.
func RotationZ(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return MatrixFromRows(
		[]float64{c, -s, 0, 0},
		[]float64{s, c, 0, 0},
		[]float64{0, 0, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// Shearing creates a shear matrix. Each parameter moves the first named
// axis in proportion to the second, e.g. xy moves x in proportion to y.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return MatrixFromRows(
		[]float64{1, xy, xz, 0},
		[]float64{yx, 1, yz, 0},
		[]float64{zx, zy, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// ViewTransform orients the world relative to an eye at from looking
// toward to, with up giving the approximate vertical.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := MatrixFromRows(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}

// Chain composes transforms listed in the order they should be applied.
// Chain(a, b, c) returns c * b * a, so a acts first.
func Chain(steps ...Matrix) Matrix {
	out := Identity()
	for _, m := range steps {
		out = m.Mul(out)
	}
	return out
}
