package cpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/raymarch/framebuffer"
	"github.com/achilleasa/raymarch/log"
	"github.com/achilleasa/raymarch/scene"
	"github.com/achilleasa/raymarch/tracer"
)

// The speed estimate reported by cpu tracers. All cpu tracers run on
// identical cores so they share the same estimate.
const baselineSpeed uint32 = 1

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *tracer.Stats

	sceneData *scene.Scene
	fb        *framebuffer.Framebuffer
}

// Create a new cpu tracer. The tracer owns a single worker go-routine that
// is started by Init.
func NewTracer(id string) tracer.Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		blockReqChan: make(chan tracer.BlockRequest, 1),
		stats:        &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Get the computation speed estimate.
func (tr *cpuTracer) Speed() uint32 {
	return baselineSpeed
}

// Attach scene and framebuffer and start the worker.
func (tr *cpuTracer) Init(sc *scene.Scene, fb *framebuffer.Framebuffer) error {
	tr.Lock()
	defer tr.Unlock()

	if sc == nil || sc.Camera == nil || sc.SDF == nil {
		return ErrNoSceneData
	}
	if fb == nil {
		return ErrNoFramebuffer
	}
	if fb.Width != sc.Camera.Width || fb.Height != sc.Camera.Height {
		return fmt.Errorf("%w: framebuffer is %dx%d, camera is %dx%d", ErrFrameMismatch, fb.Width, fb.Height, sc.Camera.Width, sc.Camera.Height)
	}

	tr.sceneData = sc
	tr.fb = fb

	// Start worker
	if tr.closeChan == nil {
		tr.startWorker()
	}

	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	tr.cleanup()
}

// Cleanup tracer. This method is meant to be called while holding tr.Lock()
func (tr *cpuTracer) cleanup() {
	// If the worker is running shut it down
	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close and shutdown channel
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
		tr.wg.Wait()
	}

	tr.sceneData = nil
	tr.fb = nil
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	select {
	case tr.blockReqChan <- blockReq:
	default:
		// drop the request if worker is not listening
		tr.logger.Error("request processor did not receive block request")
		blockReq.ErrChan <- fmt.Errorf("cpu tracer (%s): block request dropped; tracer is busy", tr.id)
	}
}

// Retrieve last block statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	tr.closeChan = make(chan struct{})
	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func(closeChan chan struct{}) {
		defer tr.wg.Done()
		var blockReq tracer.BlockRequest
		var stats tracer.Stats
		var err error
		close(readyChan)
		for {
			select {
			case blockReq = <-tr.blockReqChan:
				// Render block and reply with our completion status
				stats, err = tr.renderBlock(&blockReq)
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}

				*tr.stats = stats
				tr.logger.Debugf("rendered rows [%d, %d) in %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, stats.RenderTime)
				blockReq.DoneChan <- blockReq.BlockH
			case <-closeChan:
				// Ack close
				closeChan <- struct{}{}
				return
			}
		}
	}(tr.closeChan)

	// Wait for go-routine to start
	<-readyChan
}

// Shade every pixel in the requested block. The render context is checked
// before each row.
func (tr *cpuTracer) renderBlock(blockReq *tracer.BlockRequest) (tracer.Stats, error) {
	stats := tracer.Stats{BlockH: blockReq.BlockH}
	if tr.sceneData == nil {
		return stats, ErrNoSceneData
	}

	camera := tr.sceneData.Camera
	if blockReq.BlockY+blockReq.BlockH > camera.Height {
		return stats, fmt.Errorf("%w: rows [%d, %d) with frame height %d", ErrBlockBounds, blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, camera.Height)
	}

	start := time.Now()
	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		if blockReq.Context != nil {
			if err := blockReq.Context.Err(); err != nil {
				return stats, err
			}
		}

		for x := uint32(0); x < camera.Width; x++ {
			color, hit := Shade(tr.sceneData, camera.PrimaryRay(x, y))
			tr.fb.Set(x, y, color)

			stats.Rays++
			stats.Steps += uint64(hit.Steps)
			if hit.Hit {
				stats.Hits++
			}
		}
	}
	stats.RenderTime = time.Since(start)

	return stats, nil
}
