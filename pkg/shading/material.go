package shading

// Material holds the Phong coefficients of a surface.
type Material struct {
	Color     Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// DefaultMaterial returns a white material with the standard coefficients.
func DefaultMaterial() Material {
	return Material{
		Color:     White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}
