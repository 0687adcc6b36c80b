package cmd

import (
	"github.com/achilleasa/raymarch/mesh"
	"github.com/achilleasa/raymarch/scene"
	"github.com/urfave/cli"
)

// Tessellate the surface of a built-in scene and export it as STL.
func ExportMesh(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	kind, err := scene.ParseKind(ctx.String("scene"))
	if err != nil {
		return err
	}

	bounds := mesh.DefaultBounds(kind)
	if value := ctx.String("min"); value != "" {
		if bounds.Min, err = parseVec3(value); err != nil {
			return err
		}
	}
	if value := ctx.String("max"); value != "" {
		if bounds.Max, err = parseVec3(value); err != nil {
			return err
		}
	}

	logger.Noticef(`tessellating "%s" scene within %s - %s`, kind, fmtVec3(bounds.Min), fmtVec3(bounds.Max))
	m, err := mesh.Tessellate(kind.SDF(), bounds, ctx.Int("cells"))
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	if err = m.SaveSTL(outFile); err != nil {
		return err
	}

	logger.Noticef("wrote %d triangles to %s", len(m.Triangles), outFile)
	return nil
}
