package scene

import (
	"math"
	"sort"

	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/shading"
)

// View is a suggested camera placement for a scene.
type View struct {
	From        math3d.Tuple
	To          math3d.Tuple
	Up          math3d.Tuple
	FieldOfView float64 // radians
}

// Transform returns the view transform for v.
func (v View) Transform() math3d.Matrix {
	return math3d.ViewTransform(v.From, v.To, v.Up)
}

// Scene is a named, procedurally built world.
type Scene struct {
	Name        string
	Description string
	View        View
	build       func() *World
}

// Build returns a freshly constructed world for the scene.
func (s Scene) Build() *World {
	return s.build()
}

var scenes = map[string]Scene{
	"default": {
		Name:        "default",
		Description: "two concentric spheres",
		View: View{
			From:        math3d.Point(0, 0, -5),
			To:          math3d.Point(0, 0, 0),
			Up:          math3d.Vector(0, 1, 0),
			FieldOfView: math.Pi / 2,
		},
		build: DefaultWorld,
	},
	"room": {
		Name:        "room",
		Description: "three spheres on a floor between two walls",
		View: View{
			From:        math3d.Point(0, 1.5, -5),
			To:          math3d.Point(0, 1, 0),
			Up:          math3d.Vector(0, 1, 0),
			FieldOfView: math.Pi / 3,
		},
		build: RoomWorld,
	},
	"silhouette": {
		Name:        "silhouette",
		Description: "flat red sphere with no shading",
		View:        frontView,
		build:       SilhouetteWorld,
	},
	"shaded": {
		Name:        "shaded",
		Description: "single Phong shaded sphere",
		View:        frontView,
		build:       ShadedWorld,
	},
}

// frontView looks at the unit sphere from z=10 through a 2x2 window at z=1.
var frontView = View{
	From:        math3d.Point(0, 0, 10),
	To:          math3d.Point(0, 0, 0),
	Up:          math3d.Vector(0, 1, 0),
	FieldOfView: 2 * math.Atan(1.0/9.0),
}

// Scenes returns all built-in scenes sorted by name.
func Scenes() []Scene {
	out := make([]Scene, 0, len(scenes))
	for _, s := range scenes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup returns the built-in scene with the given name.
func Lookup(name string) (Scene, bool) {
	s, ok := scenes[name]
	return s, ok
}

// RoomWorld builds three spheres resting on a floor in front of two walls.
// The floor and walls are spheres flattened to 0.01 units.
func RoomWorld() *World {
	w := NewWorld()
	w.SetLight(shading.NewPointLight(math3d.Point(-10, 10, -10), shading.White))

	wallMaterial := shading.DefaultMaterial()
	wallMaterial.Color = shading.RGB(1, 0.9, 0.9)
	wallMaterial.Specular = 0
	flat := math3d.Scaling(10, 0.01, 10)

	floor := NewSphere()
	floor.SetTransform(flat)
	floor.Material = wallMaterial
	w.AddObject(floor)

	leftWall := NewSphere()
	leftWall.SetTransform(math3d.Chain(
		flat,
		math3d.RotationX(math.Pi/2),
		math3d.RotationY(-math.Pi/4),
		math3d.Translation(0, 0, 5),
	))
	leftWall.Material = wallMaterial
	w.AddObject(leftWall)

	rightWall := NewSphere()
	rightWall.SetTransform(math3d.Chain(
		flat,
		math3d.RotationX(math.Pi/2),
		math3d.RotationY(math.Pi/4),
		math3d.Translation(0, 0, 5),
	))
	rightWall.Material = wallMaterial
	w.AddObject(rightWall)

	middle := NewSphere()
	middle.SetTransform(math3d.Translation(-0.5, 1, 0.5))
	middle.Material.Color = shading.RGB(0.1, 1, 0.5)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3
	w.AddObject(middle)

	right := NewSphere()
	right.SetTransform(math3d.Chain(
		math3d.Scaling(0.5, 0.5, 0.5),
		math3d.Translation(1.5, 0.5, -0.5),
	))
	right.Material.Color = shading.RGB(0.5, 1, 0.1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3
	w.AddObject(right)

	left := NewSphere()
	left.SetTransform(math3d.Chain(
		math3d.Scaling(0.33, 0.33, 0.33),
		math3d.Translation(-1.5, 0.33, -0.75),
	))
	left.Material.Color = shading.RGB(1, 0.8, 0.1)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3
	w.AddObject(left)

	return w
}

// SilhouetteWorld builds a unit sphere lit only by its ambient term, so
// every hit renders pure red.
func SilhouetteWorld() *World {
	w := NewWorld()
	w.SetLight(shading.NewPointLight(math3d.Point(-10, 10, 10), shading.White))

	s := NewSphere()
	s.Material.Color = shading.Red
	s.Material.Ambient = 1
	s.Material.Diffuse = 0
	s.Material.Specular = 0
	w.AddObject(s)

	return w
}

// ShadedWorld builds a magenta unit sphere lit from the upper left.
func ShadedWorld() *World {
	w := NewWorld()
	w.SetLight(shading.NewPointLight(math3d.Point(-10, 10, 10), shading.White))

	s := NewSphere()
	s.Material.Color = shading.RGB(1, 0.2, 1)
	w.AddObject(s)

	return w
}
