package scene

import "github.com/taigrr/lumen/pkg/math3d"

// Epsilon is the distance a hit point is pushed along its normal before
// casting shadow rays.
const Epsilon = 1e-5

// Intersection records where a ray crossed an object.
// T may be negative when the crossing lies behind the ray origin.
type Intersection struct {
	T      float64
	Object *Sphere
}

// NewIntersection creates an intersection.
func NewIntersection(t float64, object *Sphere) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections, typically sorted by T.
type Intersections []Intersection

// Hit returns the intersection with the lowest positive T.
// ok is false when no intersection lies in front of the ray origin.
func Hit(xs Intersections) (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !ok || x.T < hit.T {
			hit = x
			ok = true
		}
	}
	return hit, ok
}

// Computations holds the values needed to shade an intersection.
type Computations struct {
	T      float64
	Object *Sphere

	Point     math3d.Tuple
	EyeV      math3d.Tuple
	NormalV   math3d.Tuple
	Inside    bool
	OverPoint math3d.Tuple // Point nudged along NormalV by Epsilon
}

// PrepareComputations derives the shading inputs for i along r.
func (i Intersection) PrepareComputations(r math3d.Ray) Computations {
	comps := Computations{
		T:      i.T,
		Object: i.Object,
		Point:  r.Position(i.T),
		EyeV:   r.Direction.Negate(),
	}
	comps.NormalV = i.Object.NormalAt(comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.OverPoint = comps.Point.Add(comps.NormalV.Scale(Epsilon))
	return comps
}
