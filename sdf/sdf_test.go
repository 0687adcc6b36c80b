package sdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/achilleasa/raymarch/types"
)

func TestMod1(t *testing.T) {
	type spec struct {
		in  float64
		exp float64
	}
	specs := []spec{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{3.75, 0.75},
		{-0.25, 0.75},
		{-1, 0},
		{-2.5, 0.5},
		{-1e-20, 0},
	}

	for index, s := range specs {
		got := Mod1(s.in)
		if math.Abs(got-s.exp) > 1e-12 {
			t.Fatalf("[spec %d] expected Mod1(%g) = %g; got %g", index, s.in, s.exp, got)
		}
		if got < 0 || got >= 1 {
			t.Fatalf("[spec %d] expected result in [0, 1); got %g", index, got)
		}
	}
}

func TestMod1Range(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		f := (rng.Float64() - 0.5) * 1e6
		if got := Mod1(f); got < 0 || got >= 1 {
			t.Fatalf("expected Mod1(%g) in [0, 1); got %g", f, got)
		}
	}
}

func TestSpheresSurface(t *testing.T) {
	type spec struct {
		p   types.Vec3
		exp float64
	}
	specs := []spec{
		// Cell center of the reference sphere.
		{types.XYZ(0.5, 0.5, 0), -SphereRadius},
		// Same sphere in a neighbouring cell.
		{types.XYZ(-1.5, 2.5, 3), -SphereRadius},
		// On the surface.
		{types.XYZ(0.75, 0.5, 0), 0},
		// Cell corner, sqrt(0.5) away from the center.
		{types.XYZ(0, 0, 0), math.Sqrt(0.5) - SphereRadius},
	}

	for index, s := range specs {
		got := Spheres(s.p)
		if math.Abs(got-s.exp) > 1e-12 {
			t.Fatalf("[spec %d] expected Spheres(%v) = %g; got %g", index, s.p, s.exp, got)
		}
	}
}

func TestSpheresPeriodicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		p := types.XYZ(rng.Float64()*8-4, rng.Float64()*8-4, rng.Float64()*8-4)
		shift := types.XYZ(float64(rng.Intn(11)-5), float64(rng.Intn(11)-5), float64(rng.Intn(11)-5))

		d0 := Spheres(p)
		d1 := Spheres(p.Add(shift))
		if math.Abs(d0-d1) > 1e-9 {
			t.Fatalf("expected Spheres(%v) == Spheres(%v); got %g and %g", p, p.Add(shift), d0, d1)
		}
	}
}

func TestBoxDistances(t *testing.T) {
	type spec struct {
		p   types.Vec3
		exp float64
	}
	specs := []spec{
		// Center: nearest face is a half extent away.
		{BoxCenter, -0.25},
		// Off-center interior point; the nearest face along x wins.
		{types.XYZ(0.7, 0.5, 0), -0.05},
		// Front face.
		{types.XYZ(0.5, 0.5, 0.25), 0},
		// In front of the front face.
		{types.XYZ(0.5, 0.5, 3), 2.75},
		// Diagonal from an edge.
		{types.XYZ(1.05, 1.05, 0), math.Sqrt(0.3*0.3 + 0.3*0.3)},
		// Diagonal from a corner.
		{types.XYZ(1.75, 1.75, 1.25), math.Sqrt(3)},
	}

	for index, s := range specs {
		got := UnitBox(s.p)
		if math.Abs(got-s.exp) > 1e-12 {
			t.Fatalf("[spec %d] expected UnitBox(%v) = %g; got %g", index, s.p, s.exp, got)
		}
	}
}

func TestBoxSignAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20000; i++ {
		p := types.XYZ(rng.Float64()*3-1, rng.Float64()*3-1, rng.Float64()*3-1.5)
		rel := p.Sub(BoxCenter).Abs()

		inside := rel[0] < BoxSize[0] && rel[1] < BoxSize[1] && rel[2] < BoxSize[2]
		outside := rel[0] > BoxSize[0] || rel[1] > BoxSize[1] || rel[2] > BoxSize[2]

		d := UnitBox(p)
		switch {
		case inside && d > 0:
			t.Fatalf("expected non-positive distance inside the box at %v; got %g", p, d)
		case outside && d <= 0:
			t.Fatalf("expected positive distance outside the box at %v; got %g", p, d)
		}
	}
}

func TestLipschitz(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	fields := map[string]Func{"box": UnitBox, "spheres": Spheres}
	for name, fn := range fields {
		for i := 0; i < 5000; i++ {
			p := types.XYZ(rng.Float64()*4-2, rng.Float64()*4-2, rng.Float64()*4-2)
			// Stay inside one lattice cell so the modular field is continuous.
			dir := types.XYZ(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5).Normalize()
			step := 1e-3
			q := p.Add(dir.Mul(step))
			if name == "spheres" && Mod1Vec(p).Sub(Mod1Vec(q)).Len() > 2*step {
				continue
			}
			if diff := math.Abs(fn(p) - fn(q)); diff > step*(1+1e-9) {
				t.Fatalf("%s: expected |f(p)-f(q)| <= %g; got %g at %v", name, step, diff, p)
			}
		}
	}
}
