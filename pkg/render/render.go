// Package render turns a scene into pixels: a Camera that casts rays,
// and a Framebuffer that stores the result for PPM, PNG or terminal output.
package render

import (
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/shading"
)

// PixelSink receives rendered pixels. Colors are unclamped.
type PixelSink interface {
	SetPixel(x, y int, c shading.Color)
}

// ColorSource returns the color seen along a ray.
// *scene.World implements it.
type ColorSource interface {
	ColorAt(r math3d.Ray) shading.Color
}
