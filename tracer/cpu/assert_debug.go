//go:build debug

package cpu

import (
	"fmt"
	"math"

	"github.com/achilleasa/raymarch/types"
)

const unitTolerance = 1e-6

func assertUnit(dir types.Vec3) {
	if math.Abs(dir.Len()-1.0) > unitTolerance {
		panic(fmt.Sprintf("cpu: ray direction %v is not a unit vector", dir))
	}
}

func assertFinite(d float64, p types.Vec3) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		panic(fmt.Sprintf("cpu: SDF returned %f at %v", d, p))
	}
}

func assertNonZero(grad, p types.Vec3) {
	if grad == (types.Vec3{}) {
		panic(fmt.Sprintf("cpu: SDF gradient vanishes at %v", p))
	}
}
