package scene

import (
	"cmp"
	"slices"

	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/shading"
)

// World is a collection of spheres lit by at most one point light.
type World struct {
	objects []*Sphere
	light   *shading.PointLight
}

// NewWorld creates an empty world with no light.
func NewWorld() *World {
	return &World{}
}

// AddObject appends a sphere. The world takes ownership of it.
func (w *World) AddObject(s *Sphere) {
	w.objects = append(w.objects, s)
}

// Object returns the i-th sphere in insertion order.
// It panics if i is out of range.
func (w *World) Object(i int) *Sphere {
	return w.objects[i]
}

// ObjectCount returns the number of spheres.
func (w *World) ObjectCount() int {
	return len(w.objects)
}

// Objects returns the spheres in insertion order.
func (w *World) Objects() []*Sphere {
	return w.objects
}

// SetLight sets the light source, replacing any previous one.
func (w *World) SetLight(light shading.PointLight) {
	w.light = &light
}

// Light returns the light source and whether one is set.
func (w *World) Light() (shading.PointLight, bool) {
	if w.light == nil {
		return shading.PointLight{}, false
	}
	return *w.light, true
}

// Intersect returns every intersection of r with the world's objects,
// sorted by T. Equal values keep object insertion order.
func (w *World) Intersect(r math3d.Ray) Intersections {
	var xs Intersections
	for _, obj := range w.objects {
		xs = append(xs, obj.Intersect(r)...)
	}
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
	return xs
}

// IsShadowed reports whether an object lies between point and the light.
// Without a light nothing is shadowed.
func (w *World) IsShadowed(point math3d.Tuple) bool {
	if w.light == nil {
		return false
	}

	toLight := w.light.Position.Sub(point)
	distance := toLight.Magnitude()
	r := math3d.NewRay(point, toLight.Normalize())

	hit, ok := Hit(w.Intersect(r))
	return ok && hit.T < distance
}

// ShadeHit returns the color at a prepared intersection.
// A world without a light shades everything black.
func (w *World) ShadeHit(comps Computations) shading.Color {
	if w.light == nil {
		return shading.Black
	}
	shadowed := w.IsShadowed(comps.OverPoint)
	return shading.Lighting(comps.Object.Material, *w.light,
		comps.Point, comps.EyeV, comps.NormalV, shadowed)
}

// ColorAt returns the color seen along r, or black when r hits nothing.
func (w *World) ColorAt(r math3d.Ray) shading.Color {
	hit, ok := Hit(w.Intersect(r))
	if !ok {
		return shading.Black
	}
	return w.ShadeHit(hit.PrepareComputations(r))
}

// DefaultWorld returns a new world with two concentric spheres and a white
// light at (-10, 10, -10).
func DefaultWorld() *World {
	w := NewWorld()
	w.SetLight(shading.NewPointLight(math3d.Point(-10, 10, -10), shading.White))

	s1 := NewSphere()
	s1.Material.Color = shading.RGB(0.8, 1.0, 0.6)
	s1.Material.Diffuse = 0.7
	s1.Material.Specular = 0.2
	w.AddObject(s1)

	s2 := NewSphere()
	s2.SetTransform(math3d.Scaling(0.5, 0.5, 0.5))
	w.AddObject(s2)

	return w
}
