package shading

import (
	"math"
	"testing"

	"github.com/taigrr/lumen/pkg/math3d"
)

func TestNewPointLight(t *testing.T) {
	light := NewPointLight(math3d.Point(0, 0, 0), White)
	if light.Position != math3d.Point(0, 0, 0) || light.Intensity != White {
		t.Errorf("NewPointLight = %+v", light)
	}
}

func TestLighting(t *testing.T) {
	m := DefaultMaterial()
	position := math3d.Point(0, 0, 0)
	half := math.Sqrt2 / 2

	tests := []struct {
		name     string
		eyev     math3d.Tuple
		normalv  math3d.Tuple
		light    PointLight
		inShadow bool
		expected Color
	}{
		{
			name:     "eye between light and surface",
			eyev:     math3d.Vector(0, 0, -1),
			normalv:  math3d.Vector(0, 0, -1),
			light:    NewPointLight(math3d.Point(0, 0, -10), White),
			expected: RGB(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eyev:     math3d.Vector(0, half, -half),
			normalv:  math3d.Vector(0, 0, -1),
			light:    NewPointLight(math3d.Point(0, 0, -10), White),
			expected: RGB(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eyev:     math3d.Vector(0, 0, -1),
			normalv:  math3d.Vector(0, 0, -1),
			light:    NewPointLight(math3d.Point(0, 10, -10), White),
			expected: RGB(0.7364, 0.7364, 0.7364),
		},
		{
			name:     "eye in the reflection path",
			eyev:     math3d.Vector(0, -half, -half),
			normalv:  math3d.Vector(0, 0, -1),
			light:    NewPointLight(math3d.Point(0, 10, -10), White),
			expected: RGB(1.6364, 1.6364, 1.6364),
		},
		{
			name:     "light behind the surface",
			eyev:     math3d.Vector(0, 0, -1),
			normalv:  math3d.Vector(0, 0, -1),
			light:    NewPointLight(math3d.Point(0, 0, 10), White),
			expected: RGB(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow",
			eyev:     math3d.Vector(0, 0, -1),
			normalv:  math3d.Vector(0, 0, -1),
			light:    NewPointLight(math3d.Point(0, 0, -10), White),
			inShadow: true,
			expected: RGB(0.1, 0.1, 0.1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lighting(m, tc.light, position, tc.eyev, tc.normalv, tc.inShadow)
			if !got.ApproxEqual(tc.expected) {
				t.Errorf("Lighting = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestLightingTintsByIntensity(t *testing.T) {
	m := DefaultMaterial()
	m.Color = RGB(1, 0.5, 0)
	m.Diffuse = 0
	m.Specular = 0
	m.Ambient = 1

	light := NewPointLight(math3d.Point(0, 0, -10), RGB(0.5, 1, 1))
	got := Lighting(m, light, math3d.Point(0, 0, 0), math3d.Vector(0, 0, -1), math3d.Vector(0, 0, -1), false)
	if !got.NearlyEqual(RGB(0.5, 0.5, 0)) {
		t.Errorf("Lighting = %v, want (0.5, 0.5, 0)", got)
	}
}

func BenchmarkLighting(b *testing.B) {
	m := DefaultMaterial()
	light := NewPointLight(math3d.Point(-10, 10, -10), White)
	point := math3d.Point(0, 0, -1)
	eyev := math3d.Vector(0, 0, -1)
	normalv := math3d.Vector(0, 0, -1)

	for b.Loop() {
		_ = Lighting(m, light, point, eyev, normalv, false)
	}
}
