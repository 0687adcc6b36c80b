package renderer

import (
	"context"

	"github.com/achilleasa/raymarch/framebuffer"
)

type Renderer interface {
	// Render frame.
	Render(ctx context.Context) error

	// Get the rendered frame. The framebuffer must not be modified while
	// a render is in progress.
	Frame() *framebuffer.Framebuffer

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
