package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"

	"github.com/achilleasa/raymarch/framebuffer"
	"github.com/achilleasa/raymarch/renderer"
	"github.com/achilleasa/raymarch/scene"
	"github.com/achilleasa/raymarch/scene/reader"
	"github.com/achilleasa/raymarch/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() > 1 {
		return errors.New("too many arguments; expected at most one scene file")
	}

	outFile := ctx.String("out")
	if _, err := framebuffer.FormatFromPath(outFile); err != nil {
		return err
	}

	renderCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sc, err := loadScene(renderCtx, ctx)
	if err != nil {
		return err
	}

	opts := renderer.Options{
		NumTracers:  ctx.Int("tracers"),
		PostProcess: []renderer.PostProcessStage{framebuffer.SaveStage(outFile)},
	}
	if opts.NumTracers < 0 {
		return fmt.Errorf("invalid tracer count %d", opts.NumTracers)
	}

	// Create renderer
	r, err := renderer.NewDefault(sc, tracer.NaiveScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Noticef(`rendering "%s" scene`, sc.Kind)
	if err = r.Render(renderCtx); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", outFile)

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

// Build the scene either from a scene file argument or from the command
// flags.
func loadScene(renderCtx context.Context, ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() == 1 {
		return reader.ReadScene(renderCtx, ctx.Args().First())
	}

	kind, err := scene.ParseKind(ctx.String("scene"))
	if err != nil {
		return nil, err
	}

	width, height := ctx.Int("width"), ctx.Int("height")
	if width <= 0 || height <= 0 {
		return nil, scene.ErrInvalidFrameDims
	}

	return scene.New(kind, uint32(width), uint32(height), ctx.Float64("fov")*math.Pi/180.0)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Rays", "Hits", "Avg steps", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Rays),
			fmt.Sprintf("%d", stat.Hits),
			avgSteps(stat.Steps, stat.Rays),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		"", "", "TOTAL",
		fmt.Sprintf("%d", stats.Rays),
		fmt.Sprintf("%d", stats.Hits),
		avgSteps(stats.Steps, stats.Rays),
		stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

func avgSteps(steps, rays uint64) string {
	if rays == 0 {
		return "-"
	}
	return fmt.Sprintf("%3.1f", float64(steps)/float64(rays))
}
