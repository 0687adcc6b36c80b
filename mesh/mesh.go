// Package mesh converts signed distance functions into triangle meshes
// using marching cubes.
package mesh

import (
	"fmt"
	"time"

	"github.com/achilleasa/raymarch/log"
	"github.com/achilleasa/raymarch/scene"
	rmsdf "github.com/achilleasa/raymarch/sdf"
	"github.com/achilleasa/raymarch/types"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var logger = log.New("mesh")

// An axis-aligned region of space.
type Bounds struct {
	Min types.Vec3
	Max types.Vec3
}

// Get the size of the region along each axis.
func (b Bounds) Size() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// Get the center of the region.
func (b Bounds) Center() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Check that the region has positive extent on every axis.
func (b Bounds) Validate() error {
	size := b.Size()
	if !size.IsFinite() || size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
		return fmt.Errorf("%w; got min %v, max %v", ErrInvalidBounds, b.Min, b.Max)
	}
	return nil
}

// Get the default tessellation region for a scene kind. The box is padded
// by a quarter unit on each side. For the lattice, a 2x2x1 block of cells
// around the origin is used.
func DefaultBounds(kind scene.Kind) Bounds {
	switch kind {
	case scene.SphereLattice:
		return Bounds{Min: types.XYZ(0, 0, -0.5), Max: types.XYZ(2, 2, 0.5)}
	default:
		pad := rmsdf.BoxSize.Add(types.XYZ(0.25, 0.25, 0.25))
		return Bounds{Min: rmsdf.BoxCenter.Sub(pad), Max: rmsdf.BoxCenter.Add(pad)}
	}
}

type Mesh struct {
	Triangles []*sdf.Triangle3
}

// Write the mesh to path in binary STL format.
func (m *Mesh) SaveSTL(path string) error {
	if err := render.SaveSTL(path, m.Triangles); err != nil {
		return fmt.Errorf("mesh: could not save %s: %w", path, err)
	}
	return nil
}

// The solid type adapts an SDF to the sdfx SDF3 interface.
type solid struct {
	fn rmsdf.Func
	bb sdf.Box3
}

func (s *solid) Evaluate(p v3.Vec) float64 {
	return s.fn(types.XYZ(p.X, p.Y, p.Z))
}

func (s *solid) BoundingBox() sdf.Box3 {
	return s.bb
}

func toV3(v types.Vec3) v3.Vec {
	return v3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Create a closed sdfx solid from fn by intersecting it with the bounds.
func Solid(fn rmsdf.Func, bounds Bounds) (sdf.SDF3, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	clip, err := sdf.Box3D(toV3(bounds.Size()), 0)
	if err != nil {
		return nil, fmt.Errorf("mesh: could not create clip box: %w", err)
	}
	clip = sdf.Transform3D(clip, sdf.Translate3d(toV3(bounds.Center())))

	s := &solid{
		fn: fn,
		bb: sdf.Box3{Min: toV3(bounds.Min), Max: toV3(bounds.Max)},
	}

	// The clip box goes first so its bounding box is used for the intersection.
	return sdf.Intersect3D(clip, s), nil
}

// Tessellate the surface of fn within bounds. The cells argument controls
// the number of marching cube cells along the longest axis of the region.
func Tessellate(fn rmsdf.Func, bounds Bounds, cells int) (*Mesh, error) {
	if cells <= 0 {
		return nil, ErrInvalidCells
	}

	s, err := Solid(fn, bounds)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	m := &Mesh{Triangles: triangles}

	logger.Infof("tessellated %d triangles using %d cells in %s", len(m.Triangles), cells, time.Since(start))
	return m, nil
}
