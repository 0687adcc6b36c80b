package cmd

import (
	"fmt"

	"github.com/achilleasa/raymarch/scene"
	"github.com/achilleasa/raymarch/sdf"
	"github.com/achilleasa/raymarch/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Eye", "Surface"})
	for _, name := range scene.KindNames() {
		kind, err := scene.ParseKind(name)
		if err != nil {
			return err
		}

		table.Append([]string{
			name,
			fmtVec3(kind.Eye()),
			describeSurface(kind),
		})
	}
	table.Render()

	return nil
}

func describeSurface(kind scene.Kind) string {
	switch kind {
	case scene.SphereLattice:
		return fmt.Sprintf("unit lattice of spheres; center %s, radius %g", fmtVec3(sdf.SphereCenter), sdf.SphereRadius)
	default:
		return fmt.Sprintf("box; center %s, half-size %s", fmtVec3(sdf.BoxCenter), fmtVec3(sdf.BoxSize))
	}
}

func fmtVec3(v types.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
