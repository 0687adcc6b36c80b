package renderer

import "github.com/achilleasa/raymarch/framebuffer"

// A post-processing stage receives the completed frame. Stages run in order
// after all tracers finish.
type PostProcessStage func(*framebuffer.Framebuffer) error

type Options struct {
	// Number of cpu tracers. If zero, one tracer is created per CPU.
	NumTracers int

	// Stages applied to the rendered frame.
	PostProcess []PostProcessStage
}
