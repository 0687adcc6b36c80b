package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

// Create the raymarch cli app.
func NewApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raymarch"
	app.Usage = "render signed distance function scenes using sphere tracing"
	app.Version = "0.0.1"
	app.Flags = GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Render a built-in scene on the CPU and write the frame to an image file.
The image format is selected by the output file extension.

If a scene description file (or http/https URL) is supplied, it replaces
the scene selected by the command flags.`,
			ArgsUsage: "[scene.json]",
			Flags:     RenderFlags,
			Action:    RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
		{
			Name:  "mesh",
			Usage: "export the scene surface as an STL mesh",
			Description: `
Tessellate the surface of a built-in scene using marching cubes and write
the resulting triangles to a binary STL file. The sphere lattice is
infinite so the tessellated region is always clipped to the --min/--max
bounds.`,
			Flags:  MeshFlags,
			Action: ExportMesh,
		},
	}

	return app
}

// Run the app and return the process exit code. Command errors are
// reported on the app's error writer.
func Run(app *cli.App, args []string) int {
	err := app.Run(args)
	if err == nil {
		return 0
	}

	var errWriter io.Writer = os.Stderr
	if app.ErrWriter != nil {
		errWriter = app.ErrWriter
	}
	fmt.Fprintf(errWriter, "%s: error: %v\n", app.Name, err)
	return 1
}
