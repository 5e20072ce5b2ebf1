// Package shading provides colors, surface materials, point lights and the
// Phong reflectance model.
package shading

import (
	"image/color"

	"github.com/taigrr/lumen/pkg/math3d"
)

// Color is a linear RGB color. Components are nominally in [0, 1] but are
// left unclamped until they reach an output boundary.
type Color struct {
	R, G, B float64
}

// Colors for convenience
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// RGB creates a color from float components.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// Add returns c + o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns c - o.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns the Hadamard (component-wise) product.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns c * s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Div returns c / s.
func (c Color) Div(s float64) Color {
	return Color{c.R / s, c.G / s, c.B / s}
}

// Clamp limits each component to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA converts to an opaque 8-bit color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: Channel8(c.R),
		G: Channel8(c.G),
		B: Channel8(c.B),
		A: 255,
	}
}

// Channel8 scales a component to 0..255 as int(v*256), clamping values
// outside the range.
func Channel8(v float64) uint8 {
	scaled := int(v * 256)
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return uint8(scaled)
}

// ApproxEqual compares components to math3d.ApproxDigits.
func (c Color) ApproxEqual(o Color) bool {
	return c.equalToDigits(o, math3d.ApproxDigits)
}

// NearlyEqual compares components to math3d.NearlyDigits.
func (c Color) NearlyEqual(o Color) bool {
	return c.equalToDigits(o, math3d.NearlyDigits)
}

func (c Color) equalToDigits(o Color, digits int) bool {
	return math3d.EqualToDigits(c.R, o.R, digits) &&
		math3d.EqualToDigits(c.G, o.G, digits) &&
		math3d.EqualToDigits(c.B, o.B, digits)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
