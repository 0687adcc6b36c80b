package scene

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/achilleasa/raymarch/sdf"
	"github.com/achilleasa/raymarch/types"
)

// The SDF that is active for a render. Exactly one kind is selected per
// scene; kinds are never composited.
type Kind uint8

const (
	Box Kind = iota
	SphereLattice
)

var kindNames = map[Kind]string{
	Box:           "box",
	SphereLattice: "spheres",
}

// Reference scene defaults.
const (
	DefaultWidth  uint32 = 640
	DefaultHeight uint32 = 480
	DefaultFOV           = math.Pi / 3.0
	DefaultKind          = Box
)

var (
	DefaultLight = Light{
		Position: types.XYZ(10, 10, 10),
		Ambient:  0.4,
	}
	DefaultBackground = types.XYZ(0.2, 0.7, 0.8)
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Get the signed distance function for this kind.
func (k Kind) SDF() sdf.Func {
	switch k {
	case SphereLattice:
		return sdf.Spheres
	default:
		return sdf.UnitBox
	}
}

// Get the eye position used by scenes of this kind. Both look along -Z.
func (k Kind) Eye() types.Vec3 {
	switch k {
	case SphereLattice:
		return types.XYZ(1, 1, 3)
	default:
		return types.XYZ(0.5, 0.5, 3)
	}
}

// Lookup a scene kind by name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return Box, fmt.Errorf("%w %q; expected one of: %s", ErrUnknownScene, name, strings.Join(KindNames(), ", "))
}

// Get the names of all scene kinds in sorted order.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, name := range kindNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// A point light. Shaded intensity never drops below the ambient floor.
type Light struct {
	Position types.Vec3
	Ambient  float64
}

// A scene combines the active SDF with the camera and lighting setup.
// Scenes are immutable once rendering starts and may be shared between
// tracers.
type Scene struct {
	Kind Kind
	SDF  sdf.Func

	Camera *Camera
	Light  Light

	// The color of rays that miss the surface.
	BgColor types.Vec3
}

// Create a scene of the given kind using the kind's eye position and the
// default light and background.
func New(kind Kind, width, height uint32, fov float64) (*Scene, error) {
	if _, ok := kindNames[kind]; !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownScene, kind)
	}

	camera, err := NewCamera(width, height, fov, kind.Eye())
	if err != nil {
		return nil, err
	}

	return &Scene{
		Kind:    kind,
		SDF:     kind.SDF(),
		Camera:  camera,
		Light:   DefaultLight,
		BgColor: DefaultBackground,
	}, nil
}

// Create the reference scene: a 640x480 view of the box with a 60 degree
// vertical field of view.
func Default() *Scene {
	sc, err := New(DefaultKind, DefaultWidth, DefaultHeight, DefaultFOV)
	if err != nil {
		panic(err)
	}
	return sc
}

// Check that the scene can be rendered.
func (s *Scene) Validate() error {
	if s.Camera == nil || s.Camera.Width == 0 || s.Camera.Height == 0 {
		return ErrInvalidFrameDims
	}
	if !(s.Camera.FOV > 0 && s.Camera.FOV < math.Pi) {
		return ErrInvalidFOV
	}
	if s.SDF == nil {
		return ErrUnknownScene
	}
	if !(s.Light.Ambient >= 0 && s.Light.Ambient <= 1) {
		return ErrInvalidAmbient
	}
	return nil
}
