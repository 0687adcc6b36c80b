// Package framebuffer holds the rendered frame and encodes it into image
// files.
package framebuffer

import (
	"image"
	"math"

	"github.com/achilleasa/raymarch/types"
)

// A row-major buffer of linear RGB colors in the [0, 1] range.
type Framebuffer struct {
	Width  uint32
	Height uint32
	Pix    []types.Vec3
}

// Allocate a framebuffer with the given dims.
func New(width, height uint32) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]types.Vec3, int(width)*int(height)),
	}
}

// Store the color for pixel (x, y). Each component is clamped to [0, 1].
func (fb *Framebuffer) Set(x, y uint32, c types.Vec3) {
	fb.Pix[y*fb.Width+x] = types.XYZ(clamp01(c[0]), clamp01(c[1]), clamp01(c[2]))
}

// Get the color for pixel (x, y).
func (fb *Framebuffer) At(x, y uint32) types.Vec3 {
	return fb.Pix[y*fb.Width+x]
}

// Convert a color component to an 8-bit value.
func Quantize(c float64) uint8 {
	v := math.Round(255.0 * c)
	switch {
	case v <= 0, math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Convert the framebuffer contents to an opaque RGBA image.
func (fb *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(fb.Width), int(fb.Height)))
	offset := 0
	for _, c := range fb.Pix {
		img.Pix[offset] = Quantize(c[0])
		img.Pix[offset+1] = Quantize(c[1])
		img.Pix[offset+2] = Quantize(c[2])
		img.Pix[offset+3] = 255
		offset += 4
	}
	return img
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
