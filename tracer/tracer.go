package tracer

import (
	"context"
	"time"

	"github.com/achilleasa/raymarch/framebuffer"
	"github.com/achilleasa/raymarch/scene"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// The render context. Tracers check it once per row and abandon the
	// block when it is done.
	Context context.Context

	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block.
	RenderTime time.Duration

	// Number of primary rays, rays that hit the surface and SDF
	// evaluations performed by the sphere tracer.
	Rays  uint64
	Hits  uint64
	Steps uint64
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracers computation speed estimate compared to a
	// baseline implementation.
	Speed() uint32

	// Attach the scene to be rendered and the framebuffer that receives
	// the shaded pixels and start processing block requests.
	Init(sc *scene.Scene, fb *framebuffer.Framebuffer) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last block statistics.
	Stats() *Stats

	// Shutdown and cleanup tracer.
	Close()
}
