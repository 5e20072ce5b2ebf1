package render

import (
	"math"

	"github.com/taigrr/lumen/pkg/math3d"
)

// Camera maps a grid of pixels onto rays through a canvas one unit in front
// of the eye. In camera space the eye sits at the origin looking toward -z.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64 // radians

	transform math3d.Matrix
	inverse   math3d.Matrix

	// Derived from size and field of view
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity transform.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   math3d.Identity(),
		inverse:     math3d.Identity(),
	}
	c.computePixelData()
	return c
}

// HSize returns the horizontal size in pixels.
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the vertical size in pixels.
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians.
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize returns the world-space size of one pixel on the canvas.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform.
func (c *Camera) Transform() math3d.Matrix { return c.transform }

// SetTransform sets the view transform. The matrix must be invertible.
func (c *Camera) SetTransform(m math3d.Matrix) {
	c.transform = m
	c.inverse = m.Inverse()
}

// SetSize changes the pixel dimensions.
func (c *Camera) SetSize(hsize, vsize int) {
	c.hsize = hsize
	c.vsize = vsize
	c.computePixelData()
}

// SetFieldOfView changes the field of view (in radians).
func (c *Camera) SetFieldOfView(fov float64) {
	c.fieldOfView = fov
	c.computePixelData()
}

func (c *Camera) computePixelData() {
	halfView := math.Tan(c.fieldOfView / 2)
	aspect := float64(c.hsize) / float64(c.vsize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}

	c.pixelSize = (c.halfWidth * 2) / float64(c.hsize)
}

// RayForPixel returns the world-space ray through the center of pixel
// (px, py).
func (c *Camera) RayForPixel(px, py int) math3d.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// +x is to the left since the camera looks toward -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulTuple(math3d.Point(worldX, worldY, -1))
	origin := c.inverse.MulTuple(math3d.Origin())
	direction := pixel.Sub(origin).Normalize()

	return math3d.NewRay(origin, direction)
}

// Render traces one ray per pixel and writes each color to sink, row by
// row from the top.
func (c *Camera) Render(src ColorSource, sink PixelSink) {
	for y := 0; y < c.vsize; y++ {
		for x := 0; x < c.hsize; x++ {
			sink.SetPixel(x, y, src.ColorAt(c.RayForPixel(x, y)))
		}
	}
}

// RenderFramebuffer renders into a new framebuffer sized to the camera.
func (c *Camera) RenderFramebuffer(src ColorSource) *Framebuffer {
	fb := NewFramebuffer(c.hsize, c.vsize)
	c.Render(src, fb)
	return fb
}
