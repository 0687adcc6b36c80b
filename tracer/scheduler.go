package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign to the pool
	// of tracers.
	//
	// This function returns the block height assignment for each tracer
	// in the input list. Assignments are never zero and always add up to
	// frameH as long as frameH >= len(tracers).
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler splits the frame rows using the speed estimate of
// each tracer.
type naiveScheduler struct{}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

// Assign each tracer a block with height proportional to its speed
// estimate. Each tracer gets at least one row; any rows left over after
// rounding are assigned to the first tracer.
func (naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	blockAssignment := make([]uint32, len(tracers))
	if len(tracers) == 0 {
		return blockAssignment
	}

	var total float64 = 0.0
	for _, tr := range tracers {
		total += float64(tr.Speed())
	}

	var scheduledRows uint32 = 0
	for idx, tr := range tracers {
		rows := 1.0
		if total > 0 {
			rows = math.Max(1.0, math.Floor(float64(tr.Speed())*float64(frameH)/total))
		}
		blockAssignment[idx] = uint32(rows)
		scheduledRows += blockAssignment[idx]
	}

	// In case rows don't add up to the frame height append the missing ones to the first tracer
	if scheduledRows < frameH {
		blockAssignment[0] += frameH - scheduledRows
		return blockAssignment
	}

	// The one-row minimum may overshoot; take the excess from the largest blocks
	for ; scheduledRows > frameH; scheduledRows-- {
		largest := 0
		for idx, rows := range blockAssignment {
			if rows > blockAssignment[largest] {
				largest = idx
			}
		}
		if blockAssignment[largest] <= 1 {
			break
		}
		blockAssignment[largest]--
	}

	return blockAssignment
}
