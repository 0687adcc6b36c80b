// Package sdf provides signed distance functions: pure mappings from a point
// to its signed distance from a surface (negative inside, zero on the
// surface, positive outside).
//
// Shapes are plain function values sharing the Func signature, so the
// tracer, the normal estimator and the mesh exporter work with any of them.
// Adding a shape means adding a constructor that returns a Func.
package sdf

import (
	"math"

	"github.com/achilleasa/raymarch/types"
)

// Func evaluates the signed distance at p. Implementations must be pure and
// safe for concurrent use. Tracing is only safe for fields that are
// 1-Lipschitz along the ray direction.
type Func func(p types.Vec3) float64

// Reference scene parameters.
const SphereRadius = 0.25

var (
	SphereCenter = types.XYZ(0.5, 0.5, 0)
	BoxCenter    = types.XYZ(0.5, 0.5, 0)
	BoxSize      = types.XYZ(0.25, 0.25, 0.25)
)

// Reference shapes used by the built-in scenes.
var (
	Spheres = SphereLattice(SphereCenter, SphereRadius)
	UnitBox = Box(BoxCenter, BoxSize)
)

// Mod1 reduces f into [0, 1). Negative values wrap around so that
// Mod1(-0.25) == 0.75.
func Mod1(f float64) float64 {
	r := f - math.Floor(f)
	// f - Floor(f) rounds up to 1 for tiny negative f.
	if r >= 1 {
		return 0
	}
	return r
}

// Mod1Vec applies Mod1 to each component of p.
func Mod1Vec(p types.Vec3) types.Vec3 {
	return types.XYZ(Mod1(p[0]), Mod1(p[1]), Mod1(p[2]))
}

// SphereLattice tiles a sphere with the given cell-local center and radius
// on the unit cubic lattice along all three axes.
func SphereLattice(center types.Vec3, radius float64) Func {
	return func(p types.Vec3) float64 {
		return Mod1Vec(p).Sub(center).Len() - radius
	}
}

// Box returns the field of an axis-aligned box with the given center and
// half extents. The exterior term measures the distance to the nearest face
// or edge; inside the box the largest (least negative) axis distance wins.
func Box(center, halfSize types.Vec3) Func {
	return func(p types.Vec3) float64 {
		q := p.Sub(center).Abs().Sub(halfSize)
		return q.MaxScalar(0).Len() + min(q.MaxComp(), 0)
	}
}
