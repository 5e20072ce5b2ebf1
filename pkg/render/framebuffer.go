package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/taigrr/lumen/pkg/shading"
)

// Framebuffer is a 2D array of unclamped colors.
// For terminal output each cell shows two rows using half-block characters
// (▀), so the height should be 2x the terminal rows.
type Framebuffer struct {
	Width  int             // Width in pixels
	Height int             // Height in pixels
	Pixels []shading.Color // Row-major pixel data
}

// NewFramebuffer creates a black framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]shading.Color, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c shading.Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Out of bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c shading.Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// PixelAt returns the color at (x, y).
// Returns black if out of bounds.
func (fb *Framebuffer) PixelAt(x, y int) shading.Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return shading.Black
	}
	return fb.Pixels[y*fb.Width+x]
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x].RGBA())
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, fb.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
