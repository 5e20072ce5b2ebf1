package scene

import (
	"math"
	"testing"

	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/shading"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()
	if w.ObjectCount() != 0 || len(w.Objects()) != 0 {
		t.Errorf("new world has %d objects, want 0", w.ObjectCount())
	}
	if _, ok := w.Light(); ok {
		t.Error("new world should have no light")
	}
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()

	light, ok := w.Light()
	if !ok || light != shading.NewPointLight(math3d.Point(-10, 10, -10), shading.White) {
		t.Errorf("light = %+v, ok = %v", light, ok)
	}
	if w.ObjectCount() != 2 {
		t.Fatalf("ObjectCount() = %d, want 2", w.ObjectCount())
	}

	s1 := w.Object(0)
	if s1.Material.Color != shading.RGB(0.8, 1.0, 0.6) || s1.Material.Diffuse != 0.7 || s1.Material.Specular != 0.2 {
		t.Errorf("first sphere material = %+v", s1.Material)
	}
	if !w.Object(1).Transform().Equal(math3d.Scaling(0.5, 0.5, 0.5)) {
		t.Errorf("second sphere transform = %+v", w.Object(1).Transform())
	}
}

func TestDefaultWorldIsFresh(t *testing.T) {
	a := DefaultWorld()
	a.Object(0).Material.Ambient = 1
	a.AddObject(NewSphere())

	b := DefaultWorld()
	if b.ObjectCount() != 2 || b.Object(0).Material.Ambient != 0.1 {
		t.Error("modifying one default world leaked into another")
	}
}

func TestWorldIntersect(t *testing.T) {
	w := DefaultWorld()
	r := math3d.NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))

	xs := w.Intersect(r)
	expected := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("got %d intersections, want %d", len(xs), len(expected))
	}
	for i, want := range expected {
		if math.Abs(xs[i].T-want) > 1e-9 {
			t.Errorf("xs[%d].T = %v, want %v", i, xs[i].T, want)
		}
	}
}

func TestShadeHit(t *testing.T) {
	t.Run("outside", func(t *testing.T) {
		w := DefaultWorld()
		r := math3d.NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))
		comps := NewIntersection(4, w.Object(0)).PrepareComputations(r)

		if got := w.ShadeHit(comps); !got.ApproxEqual(shading.RGB(0.38066, 0.47583, 0.2855)) {
			t.Errorf("ShadeHit = %v, want (0.38066, 0.47583, 0.2855)", got)
		}
	})

	t.Run("inside", func(t *testing.T) {
		w := DefaultWorld()
		w.SetLight(shading.NewPointLight(math3d.Point(0, 0.25, 0), shading.White))
		r := math3d.NewRay(math3d.Point(0, 0, 0), math3d.Vector(0, 0, 1))
		comps := NewIntersection(0.5, w.Object(1)).PrepareComputations(r)

		if got := w.ShadeHit(comps); !got.ApproxEqual(shading.RGB(0.90498, 0.90498, 0.90498)) {
			t.Errorf("ShadeHit = %v, want (0.90498, 0.90498, 0.90498)", got)
		}
	})

	t.Run("in shadow", func(t *testing.T) {
		w := NewWorld()
		w.SetLight(shading.NewPointLight(math3d.Point(0, 0, -10), shading.White))
		w.AddObject(NewSphere())
		s2 := NewSphere()
		s2.SetTransform(math3d.Translation(0, 0, 10))
		w.AddObject(s2)

		r := math3d.NewRay(math3d.Point(0, 0, 5), math3d.Vector(0, 0, 1))
		comps := NewIntersection(4, s2).PrepareComputations(r)

		if got := w.ShadeHit(comps); !got.ApproxEqual(shading.RGB(0.1, 0.1, 0.1)) {
			t.Errorf("ShadeHit = %v, want (0.1, 0.1, 0.1)", got)
		}
	})

	t.Run("no light", func(t *testing.T) {
		w := NewWorld()
		s := NewSphere()
		w.AddObject(s)
		r := math3d.NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))
		comps := NewIntersection(4, s).PrepareComputations(r)

		if got := w.ShadeHit(comps); got != shading.Black {
			t.Errorf("ShadeHit = %v, want black", got)
		}
	})
}

func TestColorAt(t *testing.T) {
	t.Run("miss", func(t *testing.T) {
		w := DefaultWorld()
		r := math3d.NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 1, 0))
		if got := w.ColorAt(r); got != shading.Black {
			t.Errorf("ColorAt = %v, want black", got)
		}
	})

	t.Run("hit", func(t *testing.T) {
		w := DefaultWorld()
		r := math3d.NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))
		if got := w.ColorAt(r); !got.ApproxEqual(shading.RGB(0.38066, 0.47583, 0.2855)) {
			t.Errorf("ColorAt = %v, want (0.38066, 0.47583, 0.2855)", got)
		}
	})

	t.Run("intersection behind the ray", func(t *testing.T) {
		w := DefaultWorld()
		outer, inner := w.Object(0), w.Object(1)
		outer.Material.Ambient = 1
		inner.Material.Ambient = 1

		r := math3d.NewRay(math3d.Point(0, 0, 0.75), math3d.Vector(0, 0, -1))
		if got := w.ColorAt(r); !got.ApproxEqual(inner.Material.Color) {
			t.Errorf("ColorAt = %v, want inner color %v", got, inner.Material.Color)
		}
	})
}

func TestIsShadowed(t *testing.T) {
	w := DefaultWorld()

	tests := []struct {
		name     string
		point    math3d.Tuple
		expected bool
	}{
		{"nothing collinear", math3d.Point(0, 10, 0), false},
		{"object between point and light", math3d.Point(10, -10, 10), true},
		{"object behind the light", math3d.Point(-20, 20, -20), false},
		{"object behind the point", math3d.Point(-2, 2, -2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.IsShadowed(tc.point); got != tc.expected {
				t.Errorf("IsShadowed(%v) = %v, want %v", tc.point, got, tc.expected)
			}
		})
	}

	if NewWorld().IsShadowed(math3d.Point(0, 0, 0)) {
		t.Error("a world without a light should not shadow anything")
	}
}

func BenchmarkColorAt(b *testing.B) {
	w := DefaultWorld()
	r := math3d.NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))

	for b.Loop() {
		_ = w.ColorAt(r)
	}
}
