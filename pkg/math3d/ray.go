package math3d

// Ray is a half-line with an origin point and a direction vector.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a ray.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at distance t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies m to both the origin and the direction.
// The direction is not renormalized.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
