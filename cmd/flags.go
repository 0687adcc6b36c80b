package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/raymarch/scene"
	"github.com/achilleasa/raymarch/types"
	"github.com/urfave/cli"
)

// Global flags shared by all commands.
var GlobalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "v",
		Usage: "enable verbose logging",
	},
	cli.BoolFlag{
		Name:  "vv",
		Usage: "enable even more verbose logging",
	},
	cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, notice, warning, error)",
	},
}

var sceneFlag = cli.StringFlag{
	Name:  "scene, s",
	Value: scene.DefaultKind.String(),
	Usage: fmt.Sprintf("built-in scene to use (%s)", strings.Join(scene.KindNames(), ", ")),
}

// Flags for the render command.
var RenderFlags = []cli.Flag{
	sceneFlag,
	cli.IntFlag{
		Name:  "width",
		Value: int(scene.DefaultWidth),
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: int(scene.DefaultHeight),
		Usage: "frame height",
	},
	cli.Float64Flag{
		Name:  "fov",
		Value: 60,
		Usage: "vertical field of view in degrees",
	},
	cli.IntFlag{
		Name:  "tracers, t",
		Value: 0,
		Usage: "number of cpu tracers; 0 uses one tracer per CPU",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename for the rendered frame (.ppm, .png, .bmp, .tif)",
	},
}

// Flags for the mesh command.
var MeshFlags = []cli.Flag{
	sceneFlag,
	cli.IntFlag{
		Name:  "cells",
		Value: 100,
		Usage: "marching cubes cells along the longest axis",
	},
	cli.StringFlag{
		Name:  "min",
		Usage: "lower corner of the tessellated region as x,y,z",
	},
	cli.StringFlag{
		Name:  "max",
		Usage: "upper corner of the tessellated region as x,y,z",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "surface.stl",
		Usage: "STL filename for the generated mesh",
	},
}

// Parse a vector in "x,y,z" form.
func parseVec3(value string) (types.Vec3, error) {
	var v types.Vec3
	tokens := strings.Split(value, ",")
	if len(tokens) != 3 {
		return v, fmt.Errorf("invalid vector %q; expected x,y,z", value)
	}

	for idx, token := range tokens {
		c, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return v, fmt.Errorf("invalid vector %q: %w", value, err)
		}
		v[idx] = c
	}
	return v, nil
}
