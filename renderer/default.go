package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/achilleasa/raymarch/framebuffer"
	"github.com/achilleasa/raymarch/log"
	"github.com/achilleasa/raymarch/scene"
	"github.com/achilleasa/raymarch/tracer"
	"github.com/achilleasa/raymarch/tracer/cpu"
)

// The default renderer splits each frame into row blocks and renders them
// in parallel using its pool of tracers.
type defaultRenderer struct {
	logger log.Logger

	scene     *scene.Scene
	frame     *framebuffer.Framebuffer
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer
	options   Options

	// Block assignments for the last rendered frame.
	blockAssignments []uint32

	// Channels for receiving tracer completion and error messages.
	doneChan chan uint32
	errChan  chan error

	stats FrameStats
}

// Create a renderer backed by cpu tracers. If opts.NumTracers is zero, one
// tracer is created per CPU. Tracers never outnumber the frame rows.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}

	numTracers := opts.NumTracers
	if numTracers <= 0 {
		numTracers = runtime.NumCPU()
	}
	if numTracers > int(sc.Camera.Height) {
		numTracers = int(sc.Camera.Height)
	}

	tracers := make([]tracer.Tracer, numTracers)
	for idx := range tracers {
		tracers[idx] = cpu.NewTracer(fmt.Sprintf("cpu-%d", idx))
	}

	return New(sc, scheduler, tracers, opts)
}

// Create a renderer using the supplied tracers. The renderer takes
// ownership of the tracers and closes them when it shuts down.
func New(sc *scene.Scene, scheduler tracer.BlockScheduler, tracers []tracer.Tracer, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if len(tracers) == 0 {
		return nil, ErrNoTracers
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		scene:     sc,
		frame:     framebuffer.New(sc.Camera.Width, sc.Camera.Height),
		scheduler: scheduler,
		tracers:   tracers,
		options:   opts,
		doneChan:  make(chan uint32, len(tracers)),
		errChan:   make(chan error, len(tracers)),
	}

	for _, tr := range tracers {
		if err := tr.Init(sc, r.frame); err != nil {
			r.Close()
			return nil, fmt.Errorf("renderer: could not init tracer %s: %w", tr.Id(), err)
		}
	}

	r.logger.Infof("attached %d tracers; %s", len(tracers), sc.Camera)
	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get the rendered frame.
func (r *defaultRenderer) Frame() *framebuffer.Framebuffer {
	return r.frame
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render a frame and run the post-processing stages. Rendering only
// returns after every tracer has finished with its block.
func (r *defaultRenderer) Render(ctx context.Context) error {
	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	start := time.Now()
	err := r.renderFrame(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrInterrupted, err)
		}
		return err
	}
	r.updateStats(time.Since(start))
	r.logger.Infof("rendered %dx%d frame in %s", r.frame.Width, r.frame.Height, r.stats.RenderTime)

	for idx, stage := range r.options.PostProcess {
		if err = stage(r.frame); err != nil {
			return fmt.Errorf("renderer: post-process stage %d failed: %w", idx, err)
		}
	}

	return nil
}

// Split the frame into blocks, enqueue a block request per tracer and wait
// for all of them to report back.
func (r *defaultRenderer) renderFrame(ctx context.Context) error {
	frameH := r.frame.Height
	r.blockAssignments = r.scheduler.Schedule(r.tracers, frameH)

	var blockY uint32 = 0
	pending := 0
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		if blockY+blockH > frameH {
			blockH = frameH - blockY
		}
		r.blockAssignments[idx] = blockH
		if blockH == 0 {
			continue
		}

		tr.Enqueue(tracer.BlockRequest{
			Context:  ctx,
			BlockY:   blockY,
			BlockH:   blockH,
			DoneChan: r.doneChan,
			ErrChan:  r.errChan,
		})
		blockY += blockH
		pending++
	}

	if blockY != frameH {
		// Drain outstanding requests before reporting the scheduling error
		r.wait(pending)
		return fmt.Errorf("renderer: scheduler assigned %d of %d rows", blockY, frameH)
	}

	return r.wait(pending)
}

// Wait for pending block requests to complete. All replies are collected
// even if a tracer fails; the first error is returned.
func (r *defaultRenderer) wait(pending int) error {
	var firstErr error
	for ; pending > 0; pending-- {
		select {
		case <-r.doneChan:
		case err := <-r.errChan:
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (r *defaultRenderer) updateStats(renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}

	frameH := float32(r.frame.Height)
	for idx, tr := range r.tracers {
		stats := tr.Stats()
		blockH := r.blockAssignments[idx]

		stat := TracerStat{
			Id:           tr.Id(),
			BlockH:       blockH,
			FramePercent: 100.0 * float32(blockH) / frameH,
		}
		if blockH != 0 {
			stat.RenderTime = stats.RenderTime
			stat.Rays = stats.Rays
			stat.Hits = stats.Hits
			stat.Steps = stats.Steps
		}
		r.stats.Tracers[idx] = stat

		r.stats.Rays += stat.Rays
		r.stats.Hits += stat.Hits
		r.stats.Steps += stat.Steps
	}
}
