// Package cpu implements sphere tracing of signed distance functions on
// the CPU.
package cpu

import (
	"math"

	"github.com/achilleasa/raymarch/scene"
	"github.com/achilleasa/raymarch/sdf"
	"github.com/achilleasa/raymarch/types"
)

const (
	// The maximum number of SDF evaluations per traced ray.
	MaxSteps = 128

	// Fraction of the SDF value used as the step length. The lattice SDF
	// is not a true distance bound so steps are kept conservative.
	StepScale = 0.1

	// Lower bound for the step length.
	MinStep = 0.01

	// Offset used for estimating the SDF gradient.
	NormalEpsilon = 0.1
)

// The result of tracing a ray.
type Hit struct {
	// True if the ray reached the inside of the surface.
	Hit bool

	// The first sampled point where the SDF turned negative. Only
	// meaningful when Hit is true.
	Position types.Vec3

	// Number of SDF evaluations performed.
	Steps int
}

// March from origin along dir until the SDF becomes negative or MaxSteps
// evaluations have been performed. The direction must be a unit vector.
func Trace(origin, dir types.Vec3, fn sdf.Func) Hit {
	assertUnit(dir)

	p := origin
	for step := 0; step < MaxSteps; step++ {
		d := fn(p)
		assertFinite(d, p)
		if d < 0 {
			return Hit{Hit: true, Position: p, Steps: step + 1}
		}

		p = p.Add(dir.Mul(math.Max(d*StepScale, MinStep)))
	}

	return Hit{Steps: MaxSteps}
}

// Estimate the surface normal at p from the forward-difference gradient of
// fn. The result is undefined where the gradient vanishes.
func Normal(p types.Vec3, fn sdf.Func) types.Vec3 {
	d := fn(p)
	grad := types.XYZ(
		fn(p.Add(types.XYZ(NormalEpsilon, 0, 0)))-d,
		fn(p.Add(types.XYZ(0, NormalEpsilon, 0)))-d,
		fn(p.Add(types.XYZ(0, 0, NormalEpsilon)))-d,
	)
	assertNonZero(grad, p)

	return grad.Normalize()
}

// Calculate the Lambertian intensity at surface point p with normal n.
// The result never drops below the light's ambient floor, including when
// the light sits on p and has no direction.
func Intensity(p, n types.Vec3, light scene.Light) float64 {
	l := light.Position.Sub(p).Normalize()
	if i := l.Dot(n); i > light.Ambient {
		return i
	}
	return light.Ambient
}

// Trace a primary ray against the scene and return its color. Rays that
// hit the surface are shaded white scaled by the Lambertian intensity;
// rays that miss get the scene background color.
func Shade(sc *scene.Scene, ray types.Ray) (types.Vec3, Hit) {
	hit := Trace(ray.Origin, ray.Dir, sc.SDF)
	if !hit.Hit {
		return sc.BgColor, hit
	}

	n := Normal(hit.Position, sc.SDF)
	i := Intensity(hit.Position, n, sc.Light)
	return types.XYZ(i, i, i), hit
}
