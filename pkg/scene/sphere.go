// Package scene provides the objects of a ray traced world: spheres, ray
// intersections and the World that shades them.
package scene

import (
	"math"

	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/shading"
)

// Sphere is a unit sphere centered at the object-space origin.
// Spheres are compared by pointer identity: two spheres with identical
// fields are still distinct objects.
type Sphere struct {
	// Material is owned by the sphere; assigning one copies it.
	Material shading.Material

	transform        math3d.Matrix
	inverse          math3d.Matrix
	inverseTranspose math3d.Matrix
}

// NewSphere creates a sphere with the identity transform and the default
// material.
func NewSphere() *Sphere {
	return &Sphere{
		Material:         shading.DefaultMaterial(),
		transform:        math3d.Identity(),
		inverse:          math3d.Identity(),
		inverseTranspose: math3d.Identity(),
	}
}

// Transform returns the object-to-world transform.
func (s *Sphere) Transform() math3d.Matrix {
	return s.transform
}

// SetTransform sets the object-to-world transform. The matrix must be
// invertible.
func (s *Sphere) SetTransform(m math3d.Matrix) {
	s.transform = m
	s.inverse = m.Inverse()
	s.inverseTranspose = s.inverse.Transpose()
}

// Intersect returns the points where r crosses the sphere, ordered by t.
// The result is empty on a miss and has two entries otherwise; a tangent
// ray yields two equal t values.
func (s *Sphere) Intersect(r math3d.Ray) Intersections {
	r = r.Transform(s.inverse)
	sphereToRay := r.Origin.Sub(math3d.Origin())

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return Intersections{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// NormalAt returns the world-space surface normal at a world-space point.
func (s *Sphere) NormalAt(worldPoint math3d.Tuple) math3d.Tuple {
	objectPoint := s.inverse.MulTuple(worldPoint)
	objectNormal := objectPoint.Sub(math3d.Origin())
	worldNormal := s.inverseTranspose.MulTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
