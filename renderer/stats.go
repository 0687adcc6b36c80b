package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The block height and the percentage of total frame area it represents.
	BlockH       uint32
	FramePercent float32

	// Render time for assigned block
	RenderTime time.Duration

	// Traced rays, surface hits and SDF evaluations.
	Rays  uint64
	Hits  uint64
	Steps uint64
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Totals over all tracers.
	Rays  uint64
	Hits  uint64
	Steps uint64

	// Total render time for entire frame.
	RenderTime time.Duration
}
