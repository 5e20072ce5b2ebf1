package shading

import (
	"math"

	"github.com/taigrr/lumen/pkg/math3d"
)

// PointLight is a light source with no size, emitting Intensity from Position.
type PointLight struct {
	Position  math3d.Tuple
	Intensity Color
}

// NewPointLight creates a point light.
func NewPointLight(position math3d.Tuple, intensity Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting shades point on a surface with the Phong model.
// eyev and normalv must be normalized. When inShadow is set only the
// ambient term contributes. The result is not clamped.
func Lighting(m Material, light PointLight, point, eyev, normalv math3d.Tuple, inShadow bool) Color {
	effective := m.Color.Mul(light.Intensity)
	ambient := effective.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface.
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Scale(m.Specular * factor)
	return ambient.Add(diffuse).Add(specular)
}
