package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/achilleasa/raymarch/asset"
	"github.com/achilleasa/raymarch/log"
	"github.com/achilleasa/raymarch/scene"
	"github.com/achilleasa/raymarch/types"
)

var logger = log.New("scene reader")

// The on-disk scene description. Angles are expressed in degrees. Any
// omitted field falls back to the reference scene value.
type description struct {
	Scene      string      `json:"scene"`
	Width      uint32      `json:"width,omitempty"`
	Height     uint32      `json:"height,omitempty"`
	FOV        float64     `json:"fov,omitempty"`
	Eye        *[3]float64 `json:"eye,omitempty"`
	Light      *[3]float64 `json:"light,omitempty"`
	Ambient    *float64    `json:"ambient,omitempty"`
	Background *[3]float64 `json:"background,omitempty"`
}

// Read a scene description from a local file or an http/https URL.
func ReadScene(ctx context.Context, sceneFile string) (*scene.Scene, error) {
	res, err := asset.Open(ctx, sceneFile)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	sc, err := Decode(res)
	if err != nil {
		return nil, fmt.Errorf("scene reader: %s: %w", res.Path(), err)
	}

	source := "file"
	if res.IsRemote() {
		source = "remote"
	}
	logger.Infof(`loaded "%s" scene from %s %s`, sc.Kind, source, res.Path())
	logger.Debug(sc.Camera)
	return sc, nil
}

// Decode a JSON scene description.
func Decode(r io.Reader) (*scene.Scene, error) {
	var desc description
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("invalid scene description: %w", err)
	}

	kind, err := scene.ParseKind(desc.Scene)
	if err != nil {
		return nil, err
	}

	width, height, fov := scene.DefaultWidth, scene.DefaultHeight, scene.DefaultFOV
	if desc.Width != 0 {
		width = desc.Width
	}
	if desc.Height != 0 {
		height = desc.Height
	}
	if desc.FOV != 0 {
		fov = desc.FOV * math.Pi / 180.0
	}

	sc, err := scene.New(kind, width, height, fov)
	if err != nil {
		return nil, err
	}

	if desc.Eye != nil {
		sc.Camera.Eye = types.Vec3(*desc.Eye)
	}
	if desc.Light != nil {
		sc.Light.Position = types.Vec3(*desc.Light)
	}
	if desc.Ambient != nil {
		sc.Light.Ambient = *desc.Ambient
	}
	if desc.Background != nil {
		sc.BgColor = types.Vec3(*desc.Background)
	}

	if err = sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}
