package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/raymarch/types"
)

// The camera type describes a pinhole camera that looks along the -Z axis.
// The image plane is perpendicular to the view axis at FocalLength() pixels
// from the eye so that one pixel maps to one unit on the plane.
type Camera struct {
	// Frame dims in pixels.
	Width  uint32
	Height uint32

	// Vertical field of view in radians.
	FOV float64

	// Eye position.
	Eye types.Vec3
}

// Create a camera after validating its parameters.
func NewCamera(width, height uint32, fov float64, eye types.Vec3) (*Camera, error) {
	if width == 0 || height == 0 {
		return nil, ErrInvalidFrameDims
	}
	if !(fov > 0 && fov < math.Pi) {
		return nil, fmt.Errorf("%w; got %g", ErrInvalidFOV, fov)
	}

	return &Camera{
		Width:  width,
		Height: height,
		FOV:    fov,
		Eye:    eye,
	}, nil
}

// Get the distance between the eye and the image plane.
func (c *Camera) FocalLength() float64 {
	return float64(c.Height) / (2.0 * math.Tan(c.FOV/2.0))
}

// Get the unit direction of the primary ray through the center of pixel
// (i, j). Row 0 is the top of the image.
func (c *Camera) RayDir(i, j uint32) types.Vec3 {
	dx := (float64(i) + 0.5) - float64(c.Width)/2.0
	dy := -(float64(j) + 0.5) + float64(c.Height)/2.0
	return types.XYZ(dx, dy, -c.FocalLength()).Normalize()
}

// Get the primary ray for pixel (i, j).
func (c *Camera) PrimaryRay(i, j uint32) types.Ray {
	return types.Ray{
		Origin: c.Eye,
		Dir:    c.RayDir(i, j),
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera: %dx%d, fov %.2f deg, eye (%3.3f, %3.3f, %3.3f)",
		c.Width, c.Height, c.FOV*180.0/math.Pi,
		c.Eye[0], c.Eye[1], c.Eye[2],
	)
}
